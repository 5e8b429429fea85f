package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/common"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/engine"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/entity"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/extract"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/ocr"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/quality"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/repository"
)

// ---- fakes ----

type fakeDocs struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*entity.Document
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{docs: make(map[uuid.UUID]*entity.Document)}
}

func (f *fakeDocs) add(d *entity.Document) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[d.ID] = d
}

func (f *fakeDocs) Create(_ context.Context, req *repository.CreateDocumentRequest) (*entity.Document, error) {
	d := &entity.Document{
		ID:            uuid.New(),
		ApplicationID: req.ApplicationID,
		Kind:          req.Kind,
		FilePath:      req.FilePath,
		Status:        constants.StatusUploaded,
		UploadedAt:    time.Now(),
	}
	f.add(d)
	return d, nil
}

func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: document %s", common.ErrNotFound, id)
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDocs) FindByApplicationID(_ context.Context, appID uuid.UUID) ([]*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Document
	for _, d := range f.docs {
		if d.ApplicationID == appID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeDocs) ListByStatus(_ context.Context, status constants.DocumentStatus, _ int) ([]*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Document
	for _, d := range f.docs {
		if d.Status == status {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeDocs) transition(id uuid.UUID, from []constants.DocumentStatus, apply func(*entity.Document)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	if !ok {
		return fmt.Errorf("%w: document %s", common.ErrNotFound, id)
	}
	for _, s := range from {
		if d.Status == s {
			apply(d)
			return nil
		}
	}
	return fmt.Errorf("%w: document %s is %q", common.ErrConflict, id, d.Status)
}

func (f *fakeDocs) MarkProcessing(_ context.Context, id uuid.UUID) error {
	return f.transition(id, []constants.DocumentStatus{constants.StatusUploaded, constants.StatusFailed},
		func(d *entity.Document) {
			d.Status = constants.StatusProcessing
			d.ErrorMessage = nil
		})
}

func (f *fakeDocs) FinishOCR(_ context.Context, id uuid.UUID, text string, confidence float64) error {
	return f.transition(id, []constants.DocumentStatus{constants.StatusProcessing},
		func(d *entity.Document) {
			d.Status = constants.StatusOCRCompleted
			d.ExtractedText = &text
			d.OCRConfidence = &confidence
		})
}

func (f *fakeDocs) FinishAnalysis(_ context.Context, id uuid.UUID, structured map[string]any) error {
	return f.transition(id, []constants.DocumentStatus{constants.StatusOCRCompleted},
		func(d *entity.Document) {
			d.Status = constants.StatusAnalyzed
			d.StructuredData = structured
			now := time.Now()
			d.ProcessedAt = &now
		})
}

func (f *fakeDocs) MarkFailed(_ context.Context, id uuid.UUID, reason string) error {
	return f.transition(id, []constants.DocumentStatus{
		constants.StatusUploaded, constants.StatusProcessing, constants.StatusOCRCompleted,
	}, func(d *entity.Document) {
		d.Status = constants.StatusFailed
		d.ErrorMessage = &reason
	})
}

func (f *fakeDocs) ResetForRetry(_ context.Context, id uuid.UUID) error {
	return f.transition(id, []constants.DocumentStatus{constants.StatusFailed},
		func(d *entity.Document) {
			d.Status = constants.StatusUploaded
			d.ErrorMessage = nil
			d.RetryCount++
		})
}

func (f *fakeDocs) ResetForAnalysis(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	hasText := f.docs[id] != nil && f.docs[id].ExtractedText != nil
	f.mu.Unlock()
	if !hasText {
		return fmt.Errorf("%w: document %s has no recognized text", common.ErrConflict, id)
	}
	return f.transition(id, []constants.DocumentStatus{constants.StatusFailed},
		func(d *entity.Document) {
			d.Status = constants.StatusOCRCompleted
			d.ErrorMessage = nil
			d.RetryCount++
		})
}

type fakeLogs struct {
	mu      sync.Mutex
	entries []*repository.AppendLogRequest
}

func (f *fakeLogs) Append(_ context.Context, req *repository.AppendLogRequest) (*entity.ProcessingLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, req)
	return &entity.ProcessingLog{ID: uuid.New(), DocumentID: req.DocumentID}, nil
}

func (f *fakeLogs) ListByDocumentID(_ context.Context, _ uuid.UUID) ([]*entity.ProcessingLog, error) {
	return nil, nil
}

func (f *fakeLogs) steps() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, e := range f.entries {
		out = append(out, string(e.Step)+":"+string(e.Status))
	}
	return out
}

type fakeDecisions struct {
	mu        sync.Mutex
	decisions map[uuid.UUID]*entity.Decision
}

func newFakeDecisions() *fakeDecisions {
	return &fakeDecisions{decisions: make(map[uuid.UUID]*entity.Decision)}
}

func (f *fakeDecisions) Create(_ context.Context, req *repository.CreateDecisionRequest) (*entity.Decision, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.decisions[req.ApplicationID]; ok {
		return nil, fmt.Errorf("%w: decision already exists", common.ErrConflict)
	}
	d := &entity.Decision{
		ID:                  uuid.New(),
		ApplicationID:       req.ApplicationID,
		Outcome:             req.Outcome,
		ConfidenceScore:     req.ConfidenceScore,
		BenefitAmount:       req.BenefitAmount,
		Currency:            req.Currency,
		Frequency:           req.Frequency,
		Reasoning:           req.Reasoning,
		EligibilityFactors:  req.EligibilityFactors,
		RiskAssessment:      req.RiskAssessment,
		ModelName:           req.ModelName,
		ModelVersion:        req.ModelVersion,
		RequiresHumanReview: req.RequiresHumanReview,
		CreatedAt:           time.Now(),
	}
	f.decisions[req.ApplicationID] = d
	return d, nil
}

func (f *fakeDecisions) GetByApplicationID(_ context.Context, appID uuid.UUID) (*entity.Decision, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.decisions[appID]
	if !ok {
		return nil, fmt.Errorf("%w: no decision", common.ErrNotFound)
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDecisions) Override(_ context.Context, req *repository.OverrideDecisionRequest) (*entity.Decision, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.decisions[req.ApplicationID]
	if !ok {
		return nil, fmt.Errorf("%w: no decision", common.ErrNotFound)
	}
	d.Outcome = req.Outcome
	d.BenefitAmount = req.BenefitAmount
	d.ConfidenceScore = req.ConfidenceScore
	d.RequiresHumanReview = false
	d.ReviewedAt = &req.ReviewedAt
	cp := *d
	return &cp, nil
}

func (f *fakeDecisions) List(_ context.Context, _, _ *time.Time) ([]*entity.Decision, error) {
	return nil, nil
}

type fakeAudit struct {
	mu      sync.Mutex
	entries []*repository.AppendAuditRequest
}

func (f *fakeAudit) Append(_ context.Context, req *repository.AppendAuditRequest) (*entity.AuditEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, req)
	return &entity.AuditEntry{ID: uuid.New()}, nil
}

func (f *fakeAudit) ListByApplicationID(_ context.Context, _ uuid.UUID) ([]*entity.AuditEntry, error) {
	return nil, nil
}

type fakeRecognizer struct {
	result ocr.Result
	err    error
	calls  int
}

func (f *fakeRecognizer) Extract(_ context.Context, _ string, _ constants.DocumentKind) (ocr.Result, error) {
	f.calls++
	return f.result, f.err
}

type fakeFields struct {
	result extract.Result
	err    error
}

func (f *fakeFields) Extract(_ context.Context, _ string, _ constants.DocumentKind) (extract.Result, error) {
	return f.result, f.err
}

// ---- helpers ----

const recognizedBankText = `FIRST ABU DHABI BANK
ACCOUNT STATEMENT
Account Holder: Ahmed Al Mansouri
SALARY CREDIT AED 3,200.00
Closing Balance: AED 2,890.50`

func goodRecognizer() *fakeRecognizer {
	return &fakeRecognizer{result: ocr.Result{
		Text:       recognizedBankText,
		Confidence: 0.9,
		Pages:      1,
		Method:     "image-ocr",
	}}
}

func goodFields() *fakeFields {
	return &fakeFields{result: extract.Result{
		Fields: map[string]any{
			"account_holder_name": "Ahmed Al Mansouri",
			"monthly_income":      3200.0,
			"account_balance":     2890.5,
			"confidence":          0.9,
		},
		Confidence: 0.9,
		Tier:       extract.TierModel,
		ModelName:  "moondream:1.8b",
	}}
}

func newProcessor(docs *fakeDocs, logs *fakeLogs, rec *fakeRecognizer, fields *fakeFields) *Processor {
	return NewProcessor(nil, rec, quality.NewGate(nil), fields, docs, logs)
}

func uploadedDoc(docs *fakeDocs, appID uuid.UUID, kind constants.DocumentKind) *entity.Document {
	d := &entity.Document{
		ID:            uuid.New(),
		ApplicationID: appID,
		Kind:          kind,
		FilePath:      "/data/" + string(kind) + ".pdf",
		Status:        constants.StatusUploaded,
		UploadedAt:    time.Now(),
	}
	docs.add(d)
	return d
}

// ---- document pipeline tests ----

func TestProcessDocumentHappyPath(t *testing.T) {
	docs, logs := newFakeDocs(), &fakeLogs{}
	p := newProcessor(docs, logs, goodRecognizer(), goodFields())
	doc := uploadedDoc(docs, uuid.New(), constants.BankStatement)

	out, err := p.ProcessDocument(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("ProcessDocument: %v", err)
	}
	if !out.Success {
		t.Fatalf("out = %+v, want success", out)
	}

	got, _ := docs.GetByID(context.Background(), doc.ID)
	if got.Status != constants.StatusAnalyzed {
		t.Errorf("status = %q, want analyzed", got.Status)
	}
	if got.ExtractedText == nil || *got.ExtractedText != recognizedBankText {
		t.Error("extracted text not persisted")
	}
	if got.OCRConfidence == nil || *got.OCRConfidence != 0.9 {
		t.Error("recognition confidence not persisted")
	}
	if got.StructuredData["monthly_income"] != 3200.0 {
		t.Errorf("structured data = %v", got.StructuredData)
	}

	wantSteps := []string{
		"ocr:started", "ocr:completed",
		"multimodal_analysis:started", "multimodal_analysis:completed",
	}
	steps := logs.steps()
	if len(steps) != len(wantSteps) {
		t.Fatalf("steps = %v, want %v", steps, wantSteps)
	}
	for i, w := range wantSteps {
		if steps[i] != w {
			t.Errorf("step[%d] = %q, want %q", i, steps[i], w)
		}
	}
}

func TestRunOCRGateRejection(t *testing.T) {
	docs, logs := newFakeDocs(), &fakeLogs{}
	rec := &fakeRecognizer{result: ocr.Result{
		Text:       "completely unrelated text that mentions nothing relevant at all",
		Confidence: 0.9,
	}}
	p := newProcessor(docs, logs, rec, goodFields())
	doc := uploadedDoc(docs, uuid.New(), constants.BankStatement)

	out, err := p.RunOCR(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("RunOCR: %v", err)
	}
	if out.Success {
		t.Fatal("gate rejection must not report success")
	}
	if out.Error == "" {
		t.Error("rejection reason missing from outcome")
	}

	got, _ := docs.GetByID(context.Background(), doc.ID)
	if got.Status != constants.StatusFailed {
		t.Errorf("status = %q, want failed", got.Status)
	}
	if got.RetryCount != 0 {
		t.Errorf("retry count = %d, want 0 before any explicit retry", got.RetryCount)
	}

	steps := logs.steps()
	if steps[len(steps)-1] != "ocr:failed" {
		t.Errorf("last step = %q, want ocr:failed", steps[len(steps)-1])
	}
}

func TestRunAnalysisOutOfOrder(t *testing.T) {
	docs, logs := newFakeDocs(), &fakeLogs{}
	p := newProcessor(docs, logs, goodRecognizer(), goodFields())
	doc := uploadedDoc(docs, uuid.New(), constants.BankStatement)

	_, err := p.RunAnalysis(context.Background(), doc.ID)
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict for out-of-order analysis", err)
	}
}

func TestRetryAfterFailure(t *testing.T) {
	docs, logs := newFakeDocs(), &fakeLogs{}
	rec := &fakeRecognizer{err: errors.New("tesseract crashed")}
	p := newProcessor(docs, logs, rec, goodFields())
	doc := uploadedDoc(docs, uuid.New(), constants.BankStatement)

	out, err := p.ProcessDocument(context.Background(), doc.ID)
	if err != nil || out.Success {
		t.Fatalf("first run: out=%+v err=%v, want clean failure", out, err)
	}

	// recognition recovers; retry should reset and complete the pipeline
	rec.result = goodRecognizer().result
	rec.err = nil

	out, err = p.Retry(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("Retry: %v", err)
	}
	if !out.Success {
		t.Fatalf("retry outcome = %+v, want success", out)
	}
	got, _ := docs.GetByID(context.Background(), doc.ID)
	if got.Status != constants.StatusAnalyzed {
		t.Errorf("status = %q, want analyzed after retry", got.Status)
	}
	if got.RetryCount != 1 {
		t.Errorf("retry count = %d, want 1 after one explicit retry", got.RetryCount)
	}
	if rec.calls != 2 {
		t.Errorf("recognizer calls = %d, want 2 for a recognition-failure retry", rec.calls)
	}
}

func TestRetryAfterExtractionFailureKeepsRecognizedText(t *testing.T) {
	docs, logs := newFakeDocs(), &fakeLogs{}
	// recognition must not rerun; an error here would surface if it did
	rec := &fakeRecognizer{err: errors.New("ocr engine uninstalled since")}
	p := newProcessor(docs, logs, rec, goodFields())

	text := recognizedBankText
	conf := 0.9
	reason := "field extraction failed"
	doc := &entity.Document{
		ID:            uuid.New(),
		ApplicationID: uuid.New(),
		Kind:          constants.BankStatement,
		FilePath:      "/data/bank_statement.pdf",
		Status:        constants.StatusFailed,
		ExtractedText: &text,
		OCRConfidence: &conf,
		ErrorMessage:  &reason,
		UploadedAt:    time.Now(),
	}
	docs.add(doc)

	out, err := p.Retry(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("Retry: %v", err)
	}
	if !out.Success {
		t.Fatalf("retry outcome = %+v, want success", out)
	}
	if rec.calls != 0 {
		t.Errorf("recognizer calls = %d, want 0 when recognized text is on record", rec.calls)
	}

	got, _ := docs.GetByID(context.Background(), doc.ID)
	if got.Status != constants.StatusAnalyzed {
		t.Errorf("status = %q, want analyzed", got.Status)
	}
	if got.ExtractedText == nil || *got.ExtractedText != text {
		t.Error("retry must keep the previously recognized text")
	}
	if got.OCRConfidence == nil || *got.OCRConfidence != conf {
		t.Error("retry must keep the recognition confidence")
	}
	if got.RetryCount != 1 {
		t.Errorf("retry count = %d, want 1", got.RetryCount)
	}

	steps := logs.steps()
	for _, s := range steps {
		if s == "ocr:started" {
			t.Error("recognition stage must not rerun on an extraction-failure retry")
		}
	}
	if steps[len(steps)-1] != "multimodal_analysis:completed" {
		t.Errorf("last step = %q, want multimodal_analysis:completed", steps[len(steps)-1])
	}
}

func TestRetryRequiresFailedStatus(t *testing.T) {
	docs, logs := newFakeDocs(), &fakeLogs{}
	p := newProcessor(docs, logs, goodRecognizer(), goodFields())
	doc := uploadedDoc(docs, uuid.New(), constants.BankStatement)

	if _, err := p.Retry(context.Background(), doc.ID); !errors.Is(err, common.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict when retrying a non-failed document", err)
	}
}

// ---- decision run tests ----

func testEligibility() common.EligibilityConfig {
	return common.EligibilityConfig{
		IncomeThresholdAED:    4000,
		BalanceThresholdAED:   1500,
		ConfidenceThreshold:   0.7,
		AutoApprovalThreshold: 0.8,
		Currency:              "AED",
		Frequency:             "monthly",
		FullBenefitAED:        2500,
		ReducedBenefitAED:     2000,
		ModelVersion:          "1.0",
	}
}

func testLLM() common.LLMConfig {
	return common.LLMConfig{
		DecisionModel:   "qwen2:1.5b",
		DecisionTimeout: 5 * time.Second,
	}
}

func newRunner(docs *fakeDocs, decisions *fakeDecisions, audit *fakeAudit) *DecisionRunner {
	eng := engine.New(testEligibility(), "qwen2:1.5b", nil)
	return NewDecisionRunner(nil, eng, testLLM(), testEligibility(), docs, decisions, audit)
}

func analyzedPair(docs *fakeDocs, appID uuid.UUID) {
	now := time.Now()
	bankText := "stmt"
	conf := 0.9
	docs.add(&entity.Document{
		ID: uuid.New(), ApplicationID: appID, Kind: constants.BankStatement,
		Status: constants.StatusAnalyzed, ExtractedText: &bankText, OCRConfidence: &conf,
		StructuredData: map[string]any{
			"account_holder_name": "Ahmed Al Mansouri",
			"monthly_income":      3000.0,
			"account_balance":     1000.0,
			"confidence":          0.9,
		},
		ProcessedAt: &now, UploadedAt: now,
	})
	docs.add(&entity.Document{
		ID: uuid.New(), ApplicationID: appID, Kind: constants.IdentityCard,
		Status: constants.StatusAnalyzed, ExtractedText: &bankText, OCRConfidence: &conf,
		StructuredData: map[string]any{
			"full_name":  "Ahmed Al Mansouri",
			"id_number":  "784-1990-1234567-1",
			"confidence": 0.9,
		},
		ProcessedAt: &now, UploadedAt: now,
	})
}

func TestRunDecisionHappyPath(t *testing.T) {
	docs, decisions, audit := newFakeDocs(), newFakeDecisions(), &fakeAudit{}
	appID := uuid.New()
	analyzedPair(docs, appID)
	r := newRunner(docs, decisions, audit)

	dec, trace, err := r.RunDecision(context.Background(), appID)
	if err != nil {
		t.Fatalf("RunDecision: %v", err)
	}
	if dec.Outcome != constants.OutcomeApproved {
		t.Errorf("outcome = %q, want approved (factors %v)", dec.Outcome, dec.EligibilityFactors)
	}
	if trace == nil || trace.StepCount != 7 {
		t.Errorf("trace = %+v, want seven steps", trace)
	}

	if len(audit.entries) != 1 {
		t.Fatalf("audit entries = %d, want 1", len(audit.entries))
	}
	e := audit.entries[0]
	if e.Action != constants.AuditDecisionMade || e.ActorType != constants.ActorAISystem {
		t.Errorf("audit entry = action %q actor %q", e.Action, e.ActorType)
	}
	if e.PreviousValue != nil {
		t.Error("decision_made entry must have no previous value")
	}
	if e.SystemContext["step_count"] != 7 {
		t.Errorf("audit system context = %v, want trace summary", e.SystemContext)
	}
}

func TestRunDecisionIdempotent(t *testing.T) {
	docs, decisions, audit := newFakeDocs(), newFakeDecisions(), &fakeAudit{}
	appID := uuid.New()
	analyzedPair(docs, appID)
	r := newRunner(docs, decisions, audit)

	first, _, err := r.RunDecision(context.Background(), appID)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, trace, err := r.RunDecision(context.Background(), appID)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.ID != first.ID {
		t.Error("re-entry must return the existing decision, not a new one")
	}
	if trace != nil {
		t.Error("short-circuited run must not produce a new trace")
	}
	if len(audit.entries) != 1 {
		t.Errorf("audit entries = %d, want the original one only", len(audit.entries))
	}
}

func TestRunDecisionPreconditions(t *testing.T) {
	docs, decisions, audit := newFakeDocs(), newFakeDecisions(), &fakeAudit{}
	appID := uuid.New()
	r := newRunner(docs, decisions, audit)

	// no documents at all
	if _, _, err := r.RunDecision(context.Background(), appID); !errors.Is(err, common.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict with no documents", err)
	}

	// one document still uploaded
	uploadedDoc(docs, appID, constants.BankStatement)
	if _, _, err := r.RunDecision(context.Background(), appID); !errors.Is(err, common.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict with unanalyzed documents", err)
	}
	if len(decisions.decisions) != 0 {
		t.Error("no decision may be persisted when preconditions fail")
	}
}
