package translation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"faq-backend/internal/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var ErrMissingParent = errors.New("parent id is required")

// Store is the translation collection of one parent entity type.
type Store[R Stored, S Localized] interface {
	List(ctx context.Context, parentID string) ([]R, error)
	Create(ctx context.Context, parentID string, input S) (R, error)
	Update(ctx context.Context, id string, input S) (R, error)
	Delete(ctx context.Context, id string) error
}

type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Outcome is the result of a single write against the store.
type Outcome struct {
	Lang      models.LanguageCode
	Operation Operation
	RecordID  string
	Err       error
}

func (o Outcome) Failed() bool {
	return o.Err != nil
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	out := struct {
		Lang      models.LanguageCode `json:"lang"`
		Operation Operation           `json:"operation"`
		RecordID  string              `json:"record_id,omitempty"`
		Error     string              `json:"error,omitempty"`
	}{
		Lang:      o.Lang,
		Operation: o.Operation,
		RecordID:  o.RecordID,
	}
	if o.Err != nil {
		out.Error = o.Err.Error()
	}
	return json.Marshal(out)
}

// Report collects every outcome of a reconciliation.
type Report struct {
	ParentID string    `json:"parent_id"`
	Outcomes []Outcome `json:"outcomes"`
	// DeletesSkipped is set when an upsert failed and the delete batch never ran.
	DeletesSkipped bool `json:"deletes_skipped,omitempty"`
}

func (r *Report) Count(op Operation) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Operation == op && !o.Failed() {
			n++
		}
	}
	return n
}

func (r *Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Failed() {
			failed = append(failed, o)
		}
	}
	return failed
}

// ReconcileError reports the writes that failed. Writes that succeeded are
// not rolled back.
type ReconcileError struct {
	Report *Report
}

func (e *ReconcileError) Error() string {
	failed := e.Report.Failed()
	parts := make([]string, 0, len(failed))
	for _, o := range failed {
		parts = append(parts, fmt.Sprintf("%s %s: %v", o.Lang, o.Operation, o.Err))
	}
	return fmt.Sprintf("reconcile translations of %s: %d of %d writes failed (%s)",
		e.Report.ParentID, len(failed), len(e.Report.Outcomes), strings.Join(parts, "; "))
}

func (e *ReconcileError) Unwrap() []error {
	var errs []error
	for _, o := range e.Report.Failed() {
		errs = append(errs, o.Err)
	}
	return errs
}

// Reconciler applies Plans against a Store in two batches: every create and
// update first, then every delete once the first batch has fully settled.
type Reconciler[R Stored, S Localized] struct {
	entity      string
	store       Store[R, S]
	concurrency int
	logger      *logrus.Logger
}

// NewReconciler builds a reconciler for one parent entity type. concurrency
// bounds the writes in flight per batch; zero or less means unbounded.
func NewReconciler[R Stored, S Localized](entity string, store Store[R, S], concurrency int, logger *logrus.Logger) *Reconciler[R, S] {
	return &Reconciler[R, S]{
		entity:      entity,
		store:       store,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Reconcile makes the stored translations of parentID match submitted: one
// row per submitted language, holding the first submitted values for it.
// Rows of languages that are not submitted are deleted, including when
// submitted is empty.
func (r *Reconciler[R, S]) Reconcile(ctx context.Context, parentID string, submitted []S) (*Report, error) {
	if parentID == "" {
		return nil, ErrMissingParent
	}

	existing, err := r.store.List(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing %s translations: %w", r.entity, err)
	}

	plan := NewPlan(existing, submitted)
	report := &Report{ParentID: parentID}

	log := r.logger.WithFields(logrus.Fields{
		"entity":    r.entity,
		"parent_id": parentID,
		"creates":   len(plan.Creates),
		"updates":   len(plan.Updates),
		"deletes":   len(plan.Deletes),
	})

	report.Outcomes = append(report.Outcomes, r.upsert(ctx, parentID, plan)...)
	if len(report.Failed()) > 0 {
		report.DeletesSkipped = len(plan.Deletes) > 0
		err := &ReconcileError{Report: report}
		log.WithError(err).Error("Translation upsert failed")
		return report, err
	}

	report.Outcomes = append(report.Outcomes, r.delete(ctx, plan)...)
	if len(report.Failed()) > 0 {
		err := &ReconcileError{Report: report}
		log.WithError(err).Error("Translation cleanup failed")
		return report, err
	}

	log.Debug("Translations reconciled")
	return report, nil
}

func (r *Reconciler[R, S]) upsert(ctx context.Context, parentID string, plan Plan[R, S]) []Outcome {
	tasks := make([]func() Outcome, 0, len(plan.Updates)+len(plan.Creates))
	for _, u := range plan.Updates {
		tasks = append(tasks, func() Outcome {
			out := Outcome{Lang: u.Input.TranslationLang(), Operation: OpUpdate, RecordID: u.ID}
			_, out.Err = r.store.Update(ctx, u.ID, u.Input)
			return out
		})
	}
	for _, c := range plan.Creates {
		tasks = append(tasks, func() Outcome {
			out := Outcome{Lang: c.TranslationLang(), Operation: OpCreate}
			rec, err := r.store.Create(ctx, parentID, c)
			if err != nil {
				out.Err = err
				return out
			}
			out.RecordID = rec.TranslationID()
			return out
		})
	}
	return r.run(tasks)
}

func (r *Reconciler[R, S]) delete(ctx context.Context, plan Plan[R, S]) []Outcome {
	tasks := make([]func() Outcome, 0, len(plan.Deletes))
	for _, rec := range plan.Deletes {
		tasks = append(tasks, func() Outcome {
			return Outcome{
				Lang:      rec.TranslationLang(),
				Operation: OpDelete,
				RecordID:  rec.TranslationID(),
				Err:       r.store.Delete(ctx, rec.TranslationID()),
			}
		})
	}
	return r.run(tasks)
}

// run executes tasks concurrently and waits for all of them. A failing task
// never cancels its siblings.
func (r *Reconciler[R, S]) run(tasks []func() Outcome) []Outcome {
	outcomes := make([]Outcome, len(tasks))

	var g errgroup.Group
	if r.concurrency > 0 {
		g.SetLimit(r.concurrency)
	}
	for i, task := range tasks {
		g.Go(func() error {
			outcomes[i] = task()
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}
