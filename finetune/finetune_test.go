package finetune_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jy130131/go-openai"
	"github.com/jy130131/go-openai/finetune"
	"github.com/jy130131/go-openai/testutil"
	"github.com/jy130131/go-openai/testutil/fixtures"
)

func TestParamChaining(t *testing.T) {
	p := finetune.NewParam("file-XGinujblHPwGLSztz8cPS8XY").
		WithModel("curie").
		WithNEpochs(4).
		WithBatchSize(8).
		WithLearningRateMultiplier(0.2).
		WithSuffix("support-bot")

	assert.Equal(t, "file-XGinujblHPwGLSztz8cPS8XY", p.TrainingFile)
	assert.Equal(t, "curie", p.Model)
	assert.Equal(t, 4, p.NEpochs)
	assert.Equal(t, 8, p.BatchSize)
	assert.Equal(t, 0.2, p.LearningRateMultiplier)
	assert.Equal(t, "support-bot", p.Suffix)
}

func TestParamOmitsUnsetKnobs(t *testing.T) {
	raw, err := json.Marshal(finetune.NewParam("file-1"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"training_file": "file-1"}`, string(raw))
}

func TestCreateRequiresTrainingFile(t *testing.T) {
	handler := &testutil.CaptureHandler{Body: fixtures.FineTuneCreated}
	client := testutil.ServerClient(t, handler)
	ctx := testutil.TestContext(t)

	for _, p := range []*finetune.Param{nil, {}} {
		_, err := finetune.Create(ctx, client, p)
		var apiErr *openai.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, openai.ErrInvalidRequest, apiErr.Code)
	}
	assert.Zero(t, handler.Requests)
}

func TestCreateDecodesJob(t *testing.T) {
	handler := &testutil.CaptureHandler{Body: fixtures.FineTuneCreated}
	client := testutil.ServerClient(t, handler)
	ctx := testutil.TestContext(t)

	job, err := finetune.Create(ctx, client, finetune.NewParam("file-XGinujblHPwGLSztz8cPS8XY"))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, handler.Method)
	assert.Equal(t, "/fine-tunes", handler.Path)

	assert.Equal(t, "ft-AF1WoRqd3aJAHsqc9NY7iL8F", job.ID)
	assert.Equal(t, "curie", job.Model)
	assert.Equal(t, "pending", job.Status)
	assert.Empty(t, job.FineTunedModel, "model name is only assigned once training succeeds")
	assert.Equal(t, "org-123", job.OrganizationID)

	assert.Equal(t, 4, job.Hyperparams.BatchSize)
	assert.Equal(t, 0.1, job.Hyperparams.LearningRateMultiplier)
	assert.Equal(t, 4, job.Hyperparams.NEpochs)

	require.Len(t, job.TrainingFiles, 1)
	assert.Equal(t, "file-XGinujblHPwGLSztz8cPS8XY", job.TrainingFiles[0].ID)
	assert.Equal(t, "train.jsonl", job.TrainingFiles[0].Filename)
	assert.Empty(t, job.ValidationFiles)
	assert.Empty(t, job.ResultFiles)

	require.Len(t, job.Events, 1)
	assert.Equal(t, "info", job.Events[0].Level)
	assert.Contains(t, job.Events[0].Message, "enqueued")
}

func TestRetrieveHitsJobPath(t *testing.T) {
	handler := &testutil.CaptureHandler{Body: fixtures.FineTuneCreated}
	client := testutil.ServerClient(t, handler)
	ctx := testutil.TestContext(t)

	_, err := finetune.Retrieve(ctx, client, "ft-AF1WoRqd3aJAHsqc9NY7iL8F")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, handler.Method)
	assert.Equal(t, "/fine-tunes/ft-AF1WoRqd3aJAHsqc9NY7iL8F", handler.Path)
}

func TestCancelPostsToCancelPath(t *testing.T) {
	handler := &testutil.CaptureHandler{Body: fixtures.FineTuneCreated}
	client := testutil.ServerClient(t, handler)
	ctx := testutil.TestContext(t)

	_, err := finetune.Cancel(ctx, client, "ft-AF1WoRqd3aJAHsqc9NY7iL8F")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, handler.Method)
	assert.Equal(t, "/fine-tunes/ft-AF1WoRqd3aJAHsqc9NY7iL8F/cancel", handler.Path)
	assert.JSONEq(t, "{}", string(handler.ReqBody))
}

func TestListEventsDecodesLog(t *testing.T) {
	handler := &testutil.CaptureHandler{Body: fixtures.FineTuneEvents}
	client := testutil.ServerClient(t, handler)
	ctx := testutil.TestContext(t)

	events, err := finetune.ListEvents(ctx, client, "ft-AF1WoRqd3aJAHsqc9NY7iL8F")
	require.NoError(t, err)

	assert.Equal(t, "/fine-tunes/ft-AF1WoRqd3aJAHsqc9NY7iL8F/events", handler.Path)

	require.Len(t, events.Data, 2)
	assert.Equal(t, "Job started.", events.Data[1].Message)
	assert.Equal(t, int64(1614807356), events.Data[1].CreatedAt)
}

func TestDeleteModelHitsModelsPath(t *testing.T) {
	handler := &testutil.CaptureHandler{Body: `{"id": "curie:ft-acme-2023-03-03-01-14-00", "object": "model", "deleted": true}`}
	client := testutil.ServerClient(t, handler)
	ctx := testutil.TestContext(t)

	deleted, err := finetune.DeleteModel(ctx, client, "curie:ft-acme-2023-03-03-01-14-00")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, handler.Method)
	assert.Equal(t, "/models/curie:ft-acme-2023-03-03-01-14-00", handler.Path)
	assert.True(t, deleted.Deleted)
}

func TestEmptyIDsRejected(t *testing.T) {
	client := testutil.ServerClient(t, testutil.JSONHandler(http.StatusOK, fixtures.FineTuneCreated))
	ctx := testutil.TestContext(t)

	calls := []struct {
		name string
		call func() error
	}{
		{"retrieve", func() error { _, err := finetune.Retrieve(ctx, client, ""); return err }},
		{"cancel", func() error { _, err := finetune.Cancel(ctx, client, ""); return err }},
		{"events", func() error { _, err := finetune.ListEvents(ctx, client, ""); return err }},
		{"delete model", func() error { _, err := finetune.DeleteModel(ctx, client, ""); return err }},
	}
	for _, tt := range calls {
		t.Run(tt.name, func(t *testing.T) {
			var apiErr *openai.Error
			require.ErrorAs(t, tt.call(), &apiErr)
			assert.Equal(t, openai.ErrInvalidRequest, apiErr.Code)
		})
	}
}
