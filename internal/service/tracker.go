package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"kidtasks/internal/apperr"
	"kidtasks/internal/auth"
	"kidtasks/internal/model"
	"kidtasks/internal/repository"
)

// Session identifies the authenticated user a command operates on.
type Session struct {
	Email string
}

// TaskInput carries the fields required to create a task.
type TaskInput struct {
	Text      string   `validate:"required"`
	StartTime string   `validate:"required"`
	EndTime   string   `validate:"required"`
	Days      []string `validate:"required,min=1"`
}

type childInput struct {
	Name   string `validate:"required"`
	Gender string `validate:"required,oneof=male female"`
}

// TaskStatus pairs a task with its derived lifecycle state. Callers
// partition pending vs completed on StatusDone.
type TaskStatus struct {
	Task   *model.Task
	Status Status
}

// Tracker orchestrates credentials, the document and the status engine
// behind the command surface. Every mutating command saves the whole
// document before returning.
type Tracker struct {
	doc      *model.Document
	store    *repository.FileStore
	creds    *auth.CredentialStore
	validate *validator.Validate
	log      *logrus.Logger
}

func NewTracker(doc *model.Document, store *repository.FileStore, creds *auth.CredentialStore, log *logrus.Logger) *Tracker {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Tracker{
		doc:      doc,
		store:    store,
		creds:    creds,
		validate: validator.New(),
		log:      log,
	}
}

func (t *Tracker) save() error {
	return t.store.Save(t.doc)
}

// Register creates an account. The caller logs in separately.
func (t *Tracker) Register(email, pin string) error {
	if err := t.creds.Register(email, pin); err != nil {
		return err
	}
	if err := t.save(); err != nil {
		return err
	}
	t.log.WithField("email", auth.NormalizeEmail(email)).Info("user registered")
	return nil
}

// Authenticate verifies credentials and records the user for startup
// resume.
func (t *Tracker) Authenticate(email, pin string) (Session, error) {
	email = auth.NormalizeEmail(email)
	if err := t.creds.Verify(email, pin); err != nil {
		return Session{}, err
	}
	t.doc.Settings.LastLoggedInUser = &email
	if err := t.save(); err != nil {
		return Session{}, err
	}
	return Session{Email: email}, nil
}

// Resume restores the last logged-in session, if that user still
// exists.
func (t *Tracker) Resume() (Session, bool) {
	last := t.doc.Settings.LastLoggedInUser
	if last == nil {
		return Session{}, false
	}
	if _, ok := t.doc.Users[*last]; !ok {
		return Session{}, false
	}
	return Session{Email: *last}, true
}

// Logout clears the recorded session.
func (t *Tracker) Logout(Session) error {
	t.doc.Settings.LastLoggedInUser = nil
	return t.save()
}

// ChangePin replaces the session user's PIN digest.
func (t *Tracker) ChangePin(session Session, newPIN string) error {
	if err := t.creds.ChangePin(session.Email, newPIN); err != nil {
		return err
	}
	return t.save()
}

// Theme returns the persisted display theme.
func (t *Tracker) Theme() string {
	return t.doc.Settings.Theme
}

// ToggleTheme flips between light and dark and persists the choice.
// Rendering the theme is the UI's concern.
func (t *Tracker) ToggleTheme() (string, error) {
	if t.doc.Settings.Theme == model.ThemeDark {
		t.doc.Settings.Theme = model.ThemeLight
	} else {
		t.doc.Settings.Theme = model.ThemeDark
	}
	if err := t.save(); err != nil {
		return "", err
	}
	return t.doc.Settings.Theme, nil
}

func (t *Tracker) user(session Session) (*model.User, error) {
	user, ok := t.doc.Users[session.Email]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", apperr.ErrNotFound, session.Email)
	}
	return user, nil
}

// Children returns the session user's children in creation order.
func (t *Tracker) Children(session Session) ([]*model.Child, error) {
	user, err := t.user(session)
	if err != nil {
		return nil, err
	}
	return user.Children, nil
}

// AddChild appends a child and returns its id.
func (t *Tracker) AddChild(session Session, name string, gender model.Gender) (string, error) {
	user, err := t.user(session)
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if err := t.validate.Struct(childInput{Name: name, Gender: string(gender)}); err != nil {
		return "", childValidationError(err)
	}

	child := &model.Child{
		ID:     uuid.NewString(),
		Name:   name,
		Gender: gender,
		Tasks:  []*model.Task{},
	}
	user.Children = append(user.Children, child)
	if err := t.save(); err != nil {
		return "", err
	}
	t.log.WithFields(logrus.Fields{"email": session.Email, "child": name}).Info("child added")
	return child.ID, nil
}

// RemoveChild deletes a child and all of its tasks. Confirmation of
// intent is the caller's concern.
func (t *Tracker) RemoveChild(session Session, childID string) error {
	user, err := t.user(session)
	if err != nil {
		return err
	}
	if !user.RemoveChild(childID) {
		return fmt.Errorf("%w: child %s", apperr.ErrNotFound, childID)
	}
	return t.save()
}

func (t *Tracker) child(session Session, childID string) (*model.Child, error) {
	user, err := t.user(session)
	if err != nil {
		return nil, err
	}
	child, ok := user.Child(childID)
	if !ok {
		return nil, fmt.Errorf("%w: child %s", apperr.ErrNotFound, childID)
	}
	return child, nil
}

// AddTask creates a task for the given child and returns its id.
// Inverted or empty time windows are rejected; a full seven-day
// selection is normalized to the all-days sentinel.
func (t *Tracker) AddTask(session Session, childID string, input TaskInput) (string, error) {
	child, err := t.child(session, childID)
	if err != nil {
		return "", err
	}
	input.Text = strings.TrimSpace(input.Text)
	if err := t.validate.Struct(input); err != nil {
		return "", taskValidationError(err)
	}

	start, err := model.ParseTimeOfDay(input.StartTime)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}
	end, err := model.ParseTimeOfDay(input.EndTime)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}
	if end <= start {
		return "", fmt.Errorf("%w: end time must be after start time", apperr.ErrValidation)
	}
	days, err := model.NewRecurrence(input.Days)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}

	task := &model.Task{
		ID:          uuid.NewString(),
		Text:        input.Text,
		StartTime:   start,
		EndTime:     end,
		Days:        days,
		CompletedOn: model.Ledger{},
	}
	child.Tasks = append(child.Tasks, task)
	if err := t.save(); err != nil {
		return "", err
	}
	t.log.WithFields(logrus.Fields{"child": child.Name, "task": task.Text}).Info("task added")
	return task.ID, nil
}

// RemoveTask deletes a task, completion ledger included.
func (t *Tracker) RemoveTask(session Session, childID, taskID string) error {
	child, err := t.child(session, childID)
	if err != nil {
		return err
	}
	if !child.RemoveTask(taskID) {
		return fmt.Errorf("%w: task %s", apperr.ErrNotFound, taskID)
	}
	return t.save()
}

// ToggleCompletion flips the task's ledger entry for date's calendar
// day and persists the document.
func (t *Tracker) ToggleCompletion(session Session, childID, taskID string, date time.Time) error {
	child, err := t.child(session, childID)
	if err != nil {
		return err
	}
	task, ok := child.Task(taskID)
	if !ok {
		return fmt.Errorf("%w: task %s", apperr.ErrNotFound, taskID)
	}
	done := task.Toggle(date)
	if err := t.save(); err != nil {
		return err
	}
	t.log.WithFields(logrus.Fields{
		"task": task.Text,
		"date": model.DateKey(date),
		"done": done,
	}).Debug("completion toggled")
	return nil
}

// ListTasksFor returns the child's task instances for now's date with
// their computed states, in creation order. Tasks that do not recur on
// that date are excluded entirely.
func (t *Tracker) ListTasksFor(session Session, childID string, now time.Time) ([]TaskStatus, error) {
	child, err := t.child(session, childID)
	if err != nil {
		return nil, err
	}
	var out []TaskStatus
	for _, task := range child.Tasks {
		status, ok := Evaluate(task, now)
		if !ok {
			continue
		}
		out = append(out, TaskStatus{Task: task, Status: status})
	}
	return out, nil
}

// childValidationError and taskValidationError render the first field
// error in the wording the UI shows.
func childValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Name":
			return fmt.Errorf("%w: name cannot be empty", apperr.ErrValidation)
		case "Gender":
			return fmt.Errorf("%w: gender must be male or female", apperr.ErrValidation)
		}
	}
	return fmt.Errorf("%w: %v", apperr.ErrValidation, err)
}

func taskValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Text":
			return fmt.Errorf("%w: task description cannot be empty", apperr.ErrValidation)
		case "StartTime", "EndTime":
			return fmt.Errorf("%w: all time fields must be filled", apperr.ErrValidation)
		case "Days":
			return fmt.Errorf("%w: at least one day must be selected", apperr.ErrValidation)
		}
	}
	return fmt.Errorf("%w: %v", apperr.ErrValidation, err)
}
