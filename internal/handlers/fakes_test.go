package handlers

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"plotforma/admissions-guide/internal/models"
	"plotforma/admissions-guide/internal/repositories"
	"plotforma/admissions-guide/internal/services"
)

var errDatabaseDown = errors.New("database down")

type fakeStore struct {
	mu          sync.Mutex
	fail        bool
	profiles    map[uuid.UUID]models.Profile
	scores      []models.TestScore
	activities  map[uuid.UUID]models.Activity
	evaluations map[uuid.UUID]models.Evaluation
	evalOrder   []uuid.UUID
	documents   map[uuid.UUID]models.Document
	messages    []models.ChatMessage
	deadlines   []models.UserDeadline

	notifications []models.Notification
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles:    make(map[uuid.UUID]models.Profile),
		activities:  make(map[uuid.UUID]models.Activity),
		evaluations: make(map[uuid.UUID]models.Evaluation),
		documents:   make(map[uuid.UUID]models.Document),
	}
}

type fakeProfileRepo struct{ *fakeStore }

func (r fakeProfileRepo) FindByUserID(userID uuid.UUID) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errDatabaseDown
	}
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repositories.ErrRecordNotFound
	}
	return &p, nil
}

func (r fakeProfileRepo) Upsert(profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errDatabaseDown
	}
	r.profiles[profile.UserID] = *profile
	return nil
}

type fakeTestScoreRepo struct{ *fakeStore }

func (r fakeTestScoreRepo) Create(score *models.TestScore) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	score.ID = uuid.New()
	r.scores = append([]models.TestScore{*score}, r.scores...)
	return nil
}

func (r fakeTestScoreRepo) FindByUserID(userID uuid.UUID) ([]models.TestScore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.TestScore
	for _, s := range r.scores {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeActivityRepo struct{ *fakeStore }

func (r fakeActivityRepo) Create(a *models.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = uuid.New()
	r.activities[a.ID] = *a
	return nil
}

func (r fakeActivityRepo) FindByID(userID, id uuid.UUID) (*models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.activities[id]
	if !ok || a.UserID != userID {
		return nil, repositories.ErrRecordNotFound
	}
	return &a, nil
}

func (r fakeActivityRepo) FindByUserID(userID uuid.UUID) ([]models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Activity
	for _, a := range r.activities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r fakeActivityRepo) Update(a *models.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities[a.ID] = *a
	return nil
}

func (r fakeActivityRepo) Delete(userID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.activities[id]
	if !ok || a.UserID != userID {
		return repositories.ErrRecordNotFound
	}
	delete(r.activities, id)
	return nil
}

type fakeEvaluationRepo struct{ *fakeStore }

func (r fakeEvaluationRepo) Create(e *models.Evaluation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evaluations[e.ID] = *e
	r.evalOrder = append(r.evalOrder, e.ID)
	return nil
}

func (r fakeEvaluationRepo) FindByID(id uuid.UUID) (*models.Evaluation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.evaluations[id]
	if !ok {
		return nil, repositories.ErrRecordNotFound
	}
	return &e, nil
}

func (r fakeEvaluationRepo) FindByUserID(userID uuid.UUID, limit int) ([]models.Evaluation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Evaluation
	for i := len(r.evalOrder) - 1; i >= 0 && len(out) < limit; i-- {
		if e := r.evaluations[r.evalOrder[i]]; e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeDocumentRepo struct{ *fakeStore }

func (r fakeDocumentRepo) Create(d *models.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errDatabaseDown
	}
	r.documents[d.ID] = *d
	return nil
}

func (r fakeDocumentRepo) FindByID(id uuid.UUID) (*models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.documents[id]
	if !ok {
		return nil, repositories.ErrRecordNotFound
	}
	return &d, nil
}

func (r fakeDocumentRepo) FindByUserID(userID uuid.UUID) ([]models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Document
	for _, d := range r.documents {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r fakeDocumentRepo) UpdateStatus(uuid.UUID, models.DocumentStatus) error { return nil }
func (r fakeDocumentRepo) UpdateResult(uuid.UUID, string, int) error           { return nil }
func (r fakeDocumentRepo) UpdateError(uuid.UUID, string) error                 { return nil }
func (r fakeDocumentRepo) FindPendingJobs(int) ([]models.Document, error)      { return nil, nil }

type fakeChatRepo struct{ *fakeStore }

func (r fakeChatRepo) Append(messages ...*models.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errDatabaseDown
	}
	for _, m := range messages {
		r.messages = append(r.messages, *m)
	}
	return nil
}

func (r fakeChatRepo) FindByUserID(userID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ChatMessage
	for _, m := range r.messages {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

type fakeDeadlineRepo struct{ *fakeStore }

func (r fakeDeadlineRepo) Create(d *models.UserDeadline) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errDatabaseDown
	}
	d.ID = uuid.New()
	r.deadlines = append(r.deadlines, *d)
	return nil
}

func (r fakeDeadlineRepo) FindByUserID(userID uuid.UUID, category string) ([]models.UserDeadline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.UserDeadline
	for _, d := range r.deadlines {
		if d.UserID == userID && (category == "" || d.Category == category) {
			out = append(out, d)
		}
	}
	slices.SortStableFunc(out, func(a, b models.UserDeadline) int { return strings.Compare(a.Date, b.Date) })
	return out, nil
}

func (r fakeDeadlineRepo) MarkComplete(userID, id uuid.UUID, at time.Time) (*models.UserDeadline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.deadlines {
		if d := &r.deadlines[i]; d.ID == id && d.UserID == userID {
			d.Completed = true
			d.CompletedAt = &at
			cp := *d
			return &cp, nil
		}
	}
	return nil, repositories.ErrRecordNotFound
}

func (r fakeDeadlineRepo) Delete(userID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, d := range r.deadlines {
		if d.ID == id && d.UserID == userID {
			r.deadlines = slices.Delete(r.deadlines, i, i+1)
			return nil
		}
	}
	return repositories.ErrRecordNotFound
}

type fakeNotificationRepo struct{ *fakeStore }

func (r fakeNotificationRepo) Create(n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, *n)
	return nil
}

// FindByUserID returns the newest first, like the real repository.
func (r fakeNotificationRepo) FindByUserID(userID uuid.UUID, filter string, limit int) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Notification
	for i := len(r.notifications) - 1; i >= 0 && len(out) < limit; i-- {
		n := r.notifications[i]
		if n.UserID != userID {
			continue
		}
		if (filter == models.NotificationsUnread && n.Read) || (filter == models.NotificationsRead && !n.Read) {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (r fakeNotificationRepo) CountUnread(userID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (r fakeNotificationRepo) MarkRead(userID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if n := &r.notifications[i]; n.ID == id && n.UserID == userID {
			n.Read = true
			return nil
		}
	}
	return repositories.ErrRecordNotFound
}

func (r fakeNotificationRepo) MarkAllRead(userID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var changed int64
	for i := range r.notifications {
		if n := &r.notifications[i]; n.UserID == userID && !n.Read {
			n.Read = true
			changed++
		}
	}
	return changed, nil
}

func (r fakeNotificationRepo) Delete(userID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, n := range r.notifications {
		if n.ID == id && n.UserID == userID {
			r.notifications = slices.Delete(r.notifications, i, i+1)
			return nil
		}
	}
	return repositories.ErrRecordNotFound
}

type fakeWorker struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func (w *fakeWorker) Start(context.Context) {}
func (w *fakeWorker) Stop()                 {}

func (w *fakeWorker) EnqueueJob(id uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ids = append(w.ids, id)
}

type fakeSearch struct {
	resp *models.ProgramSearchResponse
	err  error
}

func (f fakeSearch) Search(context.Context, string, int) (*models.ProgramSearchResponse, error) {
	return f.resp, f.err
}

func (f fakeSearch) IndexCatalog(context.Context, []models.University) (int, error) {
	return 0, services.ErrSearchDisabled
}
