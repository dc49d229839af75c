// Package finetune manages fine-tuning jobs: creating them from
// uploaded training files, polling status and events, cancelling, and
// deleting the resulting models.
package finetune

import (
	"context"

	"github.com/jy130131/go-openai"
	"github.com/jy130131/go-openai/file"
)

// Param is the payload for Create. TrainingFile is the id of an
// uploaded JSONL file and is required; every other knob is omitted
// from the wire form unless set.
type Param struct {
	TrainingFile                 string    `json:"training_file"`
	ValidationFile               string    `json:"validation_file,omitempty"`
	Model                        string    `json:"model,omitempty"`
	NEpochs                      int       `json:"n_epochs,omitempty"`
	BatchSize                    int       `json:"batch_size,omitempty"`
	LearningRateMultiplier       float64   `json:"learning_rate_multiplier,omitempty"`
	PromptLossWeight             float64   `json:"prompt_loss_weight,omitempty"`
	ComputeClassificationMetrics bool      `json:"compute_classification_metrics,omitempty"`
	ClassificationNClasses       int       `json:"classification_n_classes,omitempty"`
	ClassificationPositiveClass  string    `json:"classification_positive_class,omitempty"`
	ClassificationBetas          []float64 `json:"classification_betas,omitempty"`
	Suffix                       string    `json:"suffix,omitempty"`
}

// NewParam returns a Param training on the given uploaded file.
func NewParam(trainingFile string) *Param {
	return &Param{TrainingFile: trainingFile}
}

func (p *Param) WithValidationFile(fileID string) *Param { p.ValidationFile = fileID; return p }

func (p *Param) WithModel(model string) *Param { p.Model = model; return p }

func (p *Param) WithNEpochs(n int) *Param { p.NEpochs = n; return p }

func (p *Param) WithBatchSize(size int) *Param { p.BatchSize = size; return p }

func (p *Param) WithLearningRateMultiplier(mult float64) *Param {
	p.LearningRateMultiplier = mult
	return p
}

func (p *Param) WithPromptLossWeight(weight float64) *Param { p.PromptLossWeight = weight; return p }

func (p *Param) WithComputeClassificationMetrics(compute bool) *Param {
	p.ComputeClassificationMetrics = compute
	return p
}

func (p *Param) WithClassificationNClasses(n int) *Param { p.ClassificationNClasses = n; return p }

func (p *Param) WithClassificationPositiveClass(class string) *Param {
	p.ClassificationPositiveClass = class
	return p
}

func (p *Param) WithClassificationBetas(betas []float64) *Param {
	p.ClassificationBetas = betas
	return p
}

func (p *Param) WithSuffix(suffix string) *Param { p.Suffix = suffix; return p }

// FineTune is a fine-tuning job. FineTunedModel stays empty until the
// job succeeds.
type FineTune struct {
	ID              string      `json:"id"`
	Object          string      `json:"object"`
	Model           string      `json:"model"`
	CreatedAt       int64       `json:"created_at"`
	UpdatedAt       int64       `json:"updated_at"`
	FineTunedModel  string      `json:"fine_tuned_model"`
	OrganizationID  string      `json:"organization_id"`
	Status          string      `json:"status"`
	Hyperparams     Hyperparams `json:"hyperparams"`
	TrainingFiles   []file.File `json:"training_files"`
	ValidationFiles []file.File `json:"validation_files"`
	ResultFiles     []file.File `json:"result_files"`
	Events          []Event     `json:"events"`
}

// Hyperparams are the settings the job resolved, defaults included.
type Hyperparams struct {
	BatchSize              int     `json:"batch_size"`
	LearningRateMultiplier float64 `json:"learning_rate_multiplier"`
	NEpochs                int     `json:"n_epochs"`
	PromptLossWeight       float64 `json:"prompt_loss_weight"`
}

// Event is one progress line of a job.
type Event struct {
	Object    string `json:"object"`
	CreatedAt int64  `json:"created_at"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

// FineTunes is the list of jobs owned by the organization.
type FineTunes struct {
	Object string     `json:"object"`
	Data   []FineTune `json:"data"`
}

// Events is the event log of a single job.
type Events struct {
	Object string  `json:"object"`
	Data   []Event `json:"data"`
}

// Create queues a fine-tuning job.
func Create(ctx context.Context, c *openai.Client, p *Param) (*FineTune, error) {
	if p == nil || p.TrainingFile == "" {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "finetune: training file is required"}
	}
	return openai.Post[FineTune](ctx, c, "fine-tunes", p)
}

// List returns all fine-tuning jobs owned by the organization.
func List(ctx context.Context, c *openai.Client) (*FineTunes, error) {
	return openai.Get[FineTunes](ctx, c, "fine-tunes")
}

// Retrieve returns a single job.
func Retrieve(ctx context.Context, c *openai.Client, fineTuneID string) (*FineTune, error) {
	if fineTuneID == "" {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "finetune: fine-tune id is required"}
	}
	return openai.Get[FineTune](ctx, c, "fine-tunes/"+fineTuneID)
}

// Cancel stops a running job.
func Cancel(ctx context.Context, c *openai.Client, fineTuneID string) (*FineTune, error) {
	if fineTuneID == "" {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "finetune: fine-tune id is required"}
	}
	return openai.Post[FineTune](ctx, c, "fine-tunes/"+fineTuneID+"/cancel", struct{}{})
}

// ListEvents returns the progress log of a job.
func ListEvents(ctx context.Context, c *openai.Client, fineTuneID string) (*Events, error) {
	if fineTuneID == "" {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "finetune: fine-tune id is required"}
	}
	return openai.Get[Events](ctx, c, "fine-tunes/"+fineTuneID+"/events")
}

// DeleteModel removes a model produced by a fine-tuning job.
func DeleteModel(ctx context.Context, c *openai.Client, model string) (*openai.Deleted, error) {
	if model == "" {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "finetune: model is required"}
	}
	return openai.Delete[openai.Deleted](ctx, c, "models/"+model)
}
