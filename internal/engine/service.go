package engine

import (
	"context"

	"ascend/internal/document"
)

// DocumentStore is the persistence contract the Service needs.
type DocumentStore interface {
	Load(ctx context.Context) document.Document
	Save(ctx context.Context, doc document.Document)
}

// Service is the application context: it owns the store, the reducer and
// the current in-memory document. Each intent replaces the document and
// saves it. A Service is single-writer and not safe for concurrent use.
type Service struct {
	store   DocumentStore
	reducer *Reducer
	doc     document.Document
}

// Open loads the document once and returns a ready Service.
func Open(ctx context.Context, store DocumentStore, reducer *Reducer) *Service {
	if reducer == nil {
		reducer = NewReducer()
	}
	return &Service{
		store:   store,
		reducer: reducer,
		doc:     store.Load(ctx),
	}
}

// Document returns a copy of the current document.
func (s *Service) Document() document.Document { return s.doc.Clone() }

func (s *Service) Reducer() *Reducer { return s.reducer }

// Reload discards the in-memory document and loads it again.
func (s *Service) Reload(ctx context.Context) document.Document {
	s.doc = s.store.Load(ctx)
	return s.Document()
}

func (s *Service) commit(ctx context.Context, next document.Document) document.Document {
	s.doc = next
	s.store.Save(ctx, next)
	return s.Document()
}

func (s *Service) AddExperience(ctx context.Context, amount int, label string) document.Document {
	return s.commit(ctx, s.reducer.AddExperience(s.doc, amount, label))
}

func (s *Service) ToggleHabit(ctx context.Context, habitID string) document.Document {
	return s.commit(ctx, s.reducer.ToggleHabit(s.doc, habitID))
}

func (s *Service) AddProject(ctx context.Context) document.Document {
	return s.commit(ctx, s.reducer.AddProject(s.doc))
}

func (s *Service) LogIncome(ctx context.Context, projectID string, amount float64) (document.Document, error) {
	next, err := s.reducer.LogIncome(s.doc, projectID, amount)
	if err != nil {
		return s.Document(), err
	}
	return s.commit(ctx, next), nil
}

func (s *Service) LogMeasurement(ctx context.Context, metric string, value float64) (document.Document, error) {
	next, err := s.reducer.LogMeasurement(s.doc, metric, value)
	if err != nil {
		return s.Document(), err
	}
	return s.commit(ctx, next), nil
}

func (s *Service) SetProjectStatus(ctx context.Context, projectID string, status document.ProjectStatus) (document.Document, error) {
	next, err := s.reducer.SetProjectStatus(s.doc, projectID, status)
	if err != nil {
		return s.Document(), err
	}
	return s.commit(ctx, next), nil
}

// Achievements derives badges from the current document.
func (s *Service) Achievements() []Achievement {
	return NewAchievementChecker(s.doc, s.reducer.Today()).GetAchievements()
}
