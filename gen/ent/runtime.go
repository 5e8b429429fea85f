// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/db/ent/schema"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/gen/ent/auditentry"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/gen/ent/decision"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/gen/ent/document"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/gen/ent/processinglog"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditentryFields := schema.AuditEntry{}.Fields()
	_ = auditentryFields
	// auditentryDescAction is the schema descriptor for action field.
	auditentryDescAction := auditentryFields[3].Descriptor()
	// auditentry.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditentry.ActionValidator = func() func(string) error {
		validators := auditentryDescAction.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(action string) error {
			for _, fn := range fns {
				if err := fn(action); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// auditentryDescActorType is the schema descriptor for actor_type field.
	auditentryDescActorType := auditentryFields[4].Descriptor()
	// auditentry.ActorTypeValidator is a validator for the "actor_type" field. It is called by the builders before save.
	auditentry.ActorTypeValidator = func() func(string) error {
		validators := auditentryDescActorType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(actor_type string) error {
			for _, fn := range fns {
				if err := fn(actor_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// auditentryDescCreatedAt is the schema descriptor for created_at field.
	auditentryDescCreatedAt := auditentryFields[10].Descriptor()
	// auditentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditentry.DefaultCreatedAt = auditentryDescCreatedAt.Default.(func() time.Time)
	// auditentryDescID is the schema descriptor for id field.
	auditentryDescID := auditentryFields[0].Descriptor()
	// auditentry.DefaultID holds the default value on creation for the id field.
	auditentry.DefaultID = auditentryDescID.Default.(func() uuid.UUID)
	decisionFields := schema.Decision{}.Fields()
	_ = decisionFields
	// decisionDescOutcome is the schema descriptor for outcome field.
	decisionDescOutcome := decisionFields[2].Descriptor()
	// decision.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	decision.OutcomeValidator = func() func(string) error {
		validators := decisionDescOutcome.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(outcome string) error {
			for _, fn := range fns {
				if err := fn(outcome); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// decisionDescConfidenceScore is the schema descriptor for confidence_score field.
	decisionDescConfidenceScore := decisionFields[3].Descriptor()
	// decision.ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	decision.ConfidenceScoreValidator = func() func(float64) error {
		validators := decisionDescConfidenceScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence_score float64) error {
			for _, fn := range fns {
				if err := fn(confidence_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// decisionDescCurrency is the schema descriptor for currency field.
	decisionDescCurrency := decisionFields[5].Descriptor()
	// decision.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	decision.CurrencyValidator = func() func(string) error {
		validators := decisionDescCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency string) error {
			for _, fn := range fns {
				if err := fn(currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// decisionDescFrequency is the schema descriptor for frequency field.
	decisionDescFrequency := decisionFields[6].Descriptor()
	// decision.DefaultFrequency holds the default value on creation for the frequency field.
	decision.DefaultFrequency = decisionDescFrequency.Default.(string)
	// decisionDescModelName is the schema descriptor for model_name field.
	decisionDescModelName := decisionFields[10].Descriptor()
	// decision.ModelNameValidator is a validator for the "model_name" field. It is called by the builders before save.
	decision.ModelNameValidator = decisionDescModelName.Validators[0].(func(string) error)
	// decisionDescModelVersion is the schema descriptor for model_version field.
	decisionDescModelVersion := decisionFields[11].Descriptor()
	// decision.ModelVersionValidator is a validator for the "model_version" field. It is called by the builders before save.
	decision.ModelVersionValidator = decisionDescModelVersion.Validators[0].(func(string) error)
	// decisionDescProcessingTimeMs is the schema descriptor for processing_time_ms field.
	decisionDescProcessingTimeMs := decisionFields[12].Descriptor()
	// decision.DefaultProcessingTimeMs holds the default value on creation for the processing_time_ms field.
	decision.DefaultProcessingTimeMs = decisionDescProcessingTimeMs.Default.(int64)
	// decisionDescRequiresHumanReview is the schema descriptor for requires_human_review field.
	decisionDescRequiresHumanReview := decisionFields[13].Descriptor()
	// decision.DefaultRequiresHumanReview holds the default value on creation for the requires_human_review field.
	decision.DefaultRequiresHumanReview = decisionDescRequiresHumanReview.Default.(bool)
	// decisionDescCreatedAt is the schema descriptor for created_at field.
	decisionDescCreatedAt := decisionFields[18].Descriptor()
	// decision.DefaultCreatedAt holds the default value on creation for the created_at field.
	decision.DefaultCreatedAt = decisionDescCreatedAt.Default.(func() time.Time)
	// decisionDescID is the schema descriptor for id field.
	decisionDescID := decisionFields[0].Descriptor()
	// decision.DefaultID holds the default value on creation for the id field.
	decision.DefaultID = decisionDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescKind is the schema descriptor for kind field.
	documentDescKind := documentFields[2].Descriptor()
	// document.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	document.KindValidator = func() func(string) error {
		validators := documentDescKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(kind string) error {
			for _, fn := range fns {
				if err := fn(kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescFilePath is the schema descriptor for file_path field.
	documentDescFilePath := documentFields[3].Descriptor()
	// document.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	document.FilePathValidator = documentDescFilePath.Validators[0].(func(string) error)
	// documentDescOcrConfidence is the schema descriptor for ocr_confidence field.
	documentDescOcrConfidence := documentFields[5].Descriptor()
	// document.OcrConfidenceValidator is a validator for the "ocr_confidence" field. It is called by the builders before save.
	document.OcrConfidenceValidator = func() func(float64) error {
		validators := documentDescOcrConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(ocr_confidence float64) error {
			for _, fn := range fns {
				if err := fn(ocr_confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[7].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// documentDescRetryCount is the schema descriptor for retry_count field.
	documentDescRetryCount := documentFields[8].Descriptor()
	// document.DefaultRetryCount holds the default value on creation for the retry_count field.
	document.DefaultRetryCount = documentDescRetryCount.Default.(int)
	// document.RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	document.RetryCountValidator = documentDescRetryCount.Validators[0].(func(int) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[10].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	processinglogFields := schema.ProcessingLog{}.Fields()
	_ = processinglogFields
	// processinglogDescStep is the schema descriptor for step field.
	processinglogDescStep := processinglogFields[2].Descriptor()
	// processinglog.StepValidator is a validator for the "step" field. It is called by the builders before save.
	processinglog.StepValidator = func() func(string) error {
		validators := processinglogDescStep.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(step string) error {
			for _, fn := range fns {
				if err := fn(step); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processinglogDescStatus is the schema descriptor for status field.
	processinglogDescStatus := processinglogFields[3].Descriptor()
	// processinglog.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	processinglog.StatusValidator = func() func(string) error {
		validators := processinglogDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processinglogDescCreatedAt is the schema descriptor for created_at field.
	processinglogDescCreatedAt := processinglogFields[8].Descriptor()
	// processinglog.DefaultCreatedAt holds the default value on creation for the created_at field.
	processinglog.DefaultCreatedAt = processinglogDescCreatedAt.Default.(func() time.Time)
	// processinglogDescID is the schema descriptor for id field.
	processinglogDescID := processinglogFields[0].Descriptor()
	// processinglog.DefaultID holds the default value on creation for the id field.
	processinglog.DefaultID = processinglogDescID.Default.(func() uuid.UUID)
}
