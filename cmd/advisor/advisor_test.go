package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plotforma/admissions-guide/internal/models"
	"plotforma/admissions-guide/internal/services"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestAsk(t *testing.T) {
	out, err := execute(t, "ask", "--branch", "--catalog", "", "hello", "there")
	require.NoError(t, err)
	assert.Contains(t, out, "[greeting]\n")
	assert.Contains(t, out, "I'm PlotformaAI")
}

func TestAsk_CustomCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"universities":[{"id":"x","name":"X Tech","programs":[{"title":"Marine Engineering"}]}]}`), 0644))

	out, err := execute(t, "ask", "--catalog", path, "engineering")
	require.NoError(t, err)
	assert.Contains(t, out, `Top Match for "engineering": X Tech`)
}

func TestAsk_RequiresQuestion(t *testing.T) {
	_, err := execute(t, "ask")
	assert.Error(t, err)
}

func TestEvaluate(t *testing.T) {
	out, err := execute(t, "evaluate", "--gpa", "3.4", "--language", "6.6", "--sat", "1100", "--volunteer", "10")
	require.NoError(t, err)
	assert.Equal(t, "Tier: Middle\n- "+services.AdviceMiddleLead+"\n- "+services.AdviceMiddleSAT+"\n- "+services.AdviceMiddleVolunteer+"\n", out)
}

func TestEvaluate_JSONAndLenientFlags(t *testing.T) {
	out, err := execute(t, "evaluate", "--gpa", "abc", "--json")
	require.NoError(t, err)

	var resp models.EvaluateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "Junior", resp.Tier)
	assert.Equal(t, []string{services.AdviceJuniorLead, services.AdviceJuniorIELTS, services.AdviceJuniorGPA}, resp.Advisories)
}
