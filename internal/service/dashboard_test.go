package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
)

func TestService_Apply_SnapshotsJob(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()

	jobID := uuid.Must(uuid.NewV4())
	candidateID := uuid.Must(uuid.NewV4())

	ts.dashboardRepo.EXPECT().JobByID(ctx, jobID).
		Return(entity.Job{ID: jobID, Title: "Warehouse Supervisor", Company: "Acme Logistics"}, nil)

	var created entity.JobApplication
	ts.dashboardRepo.EXPECT().CreateApplication(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, app entity.JobApplication) error {
			created = app
			return nil
		})

	app, err := ts.s.Apply(ctx, candidateID, jobID)
	require.NoError(t, err)

	require.Equal(t, entity.ApplicationStatusApplied, app.Status)
	require.Equal(t, "Warehouse Supervisor", created.JobTitle)
	require.Equal(t, "Acme Logistics", created.Company)
	require.Equal(t, candidateID, created.CandidateID)
}

func TestService_Apply_UnknownJob(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()
	jobID := uuid.Must(uuid.NewV4())

	ts.dashboardRepo.EXPECT().JobByID(ctx, jobID).
		Return(entity.Job{}, entity.ErrNotFound)

	_, err := ts.s.Apply(ctx, uuid.Must(uuid.NewV4()), jobID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_CreateJob_Validation(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()

	_, err := ts.s.CreateJob(ctx, entity.Job{Title: "Driver", Company: "Acme"})
	require.ErrorIs(t, err, entity.ErrMissingRequiredField)

	_, err = ts.s.CreateJob(ctx, entity.Job{Title: "Driver", Company: "Acme", Location: "Lagos", Type: "gig"})
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)
}

func TestService_CreateInvoice_Defaults(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()

	ts.dashboardRepo.EXPECT().CreateInvoice(ctx, gomock.Any()).Return(nil)

	inv, err := ts.s.CreateInvoice(ctx, entity.Invoice{
		ClientID:      uuid.Must(uuid.NewV4()),
		InvoiceNumber: "INV-0042",
		Amount:        decimal.NewFromInt(250000),
	})
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusPending, inv.Status)
	require.False(t, inv.IssuedAt.IsZero())

	_, err = ts.s.CreateInvoice(ctx, entity.Invoice{InvoiceNumber: "INV-0043"})
	require.ErrorIs(t, err, entity.ErrMissingRequiredField)
}

func TestService_MoveTask(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()
	taskID := uuid.Must(uuid.NewV4())

	ts.dashboardRepo.EXPECT().UpdateTaskStatus(ctx, taskID, entity.TaskStatusDone).Return(nil)

	require.NoError(t, ts.s.MoveTask(ctx, taskID, entity.TaskStatusDone))
	require.ErrorIs(t, ts.s.MoveTask(ctx, taskID, "parked"), entity.ErrIncorrectRequestBody)
}

func TestService_CreateTask_Defaults(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()

	ts.dashboardRepo.EXPECT().CreateTask(ctx, gomock.Any()).Return(nil)

	task, err := ts.s.CreateTask(ctx, entity.Task{Title: "Screen warehouse shortlist"})
	require.NoError(t, err)
	require.Equal(t, entity.TaskStatusTodo, task.Status)
	require.Equal(t, entity.TaskPriorityMedium, task.Priority)
}

func TestService_UpdateProjectProgress_Bounds(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()
	projectID := uuid.Must(uuid.NewV4())

	ts.dashboardRepo.EXPECT().
		UpdateProjectProgress(ctx, projectID, entity.ProjectStatusActive, 60).
		Return(nil)

	err := ts.s.UpdateProjectProgress(ctx, projectID, entity.ProjectStatusActive, 60)
	require.NoError(t, err)

	err = ts.s.UpdateProjectProgress(ctx, projectID, entity.ProjectStatusActive, 101)
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)

	err = ts.s.UpdateProjectProgress(ctx, projectID, "archived", 10)
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)
}

func TestService_Chat(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t, testConfig())
	ctx := context.Background()

	ts.assistant.EXPECT().Reply(ctx, "What services do you offer?").
		Return("We offer recruitment, business development and IT support.", nil)

	reply, err := ts.s.Chat(ctx, "  What services do you offer?  ")
	require.NoError(t, err)
	require.NotEmpty(t, reply)

	_, err = ts.s.Chat(ctx, "   ")
	require.ErrorIs(t, err, entity.ErrMissingRequiredField)

	_, err = ts.s.Chat(ctx, strings.Repeat("a", 501))
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)
}
