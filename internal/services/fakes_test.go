package services

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"

	"tripmate/internal/models/db_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

// fakeInvoker answers every prompt with the reply of the first route whose
// key appears in the prompt, falling back to reply.
type fakeInvoker struct {
	mu      sync.Mutex
	routes  []route
	reply   string
	err     error
	prompts []string
	systems []string
}

type route struct {
	match string
	reply string
}

func newFakeInvoker(reply string) *fakeInvoker {
	return &fakeInvoker{reply: reply}
}

func (f *fakeInvoker) on(match, reply string) *fakeInvoker {
	f.routes = append(f.routes, route{match: match, reply: reply})
	return f
}

func (f *fakeInvoker) GenerateStructured(_ context.Context, prompt, systemInstruction string) (json.RawMessage, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.systems = append(f.systems, systemInstruction)
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.routes {
		if strings.Contains(prompt, r.match) {
			return utils.ExtractJSON(r.reply)
		}
	}
	return utils.ExtractJSON(f.reply)
}

func (f *fakeInvoker) Tier() utils.ModelTier { return utils.PrimaryTier }

func (f *fakeInvoker) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

// memoryHistoryRepo records created rows. createErr makes every Create fail.
type memoryHistoryRepo struct {
	mu        sync.Mutex
	created   []repositories.HistoryRecord
	createErr error
	history   *db_models.History
}

func (r *memoryHistoryRepo) Create(_ context.Context, record repositories.HistoryRecord) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, record)
	return uuid.New(), nil
}

func (r *memoryHistoryRepo) FindHistoryByUserId(_ context.Context, _ string) (*db_models.History, error) {
	if r.history == nil {
		return &db_models.History{}, nil
	}
	return r.history, nil
}
