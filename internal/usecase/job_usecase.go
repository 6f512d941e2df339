package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/infrastructure/logger"
	"locksmith_invoicing/internal/infrastructure/metrics"
	"locksmith_invoicing/internal/usecase/interfaces"
)

var (
	ErrInvalidJob         = errors.New("invalid job")
	ErrNoCustomerSelected = errors.New("no customer selected")
	ErrJobInProgress      = errors.New("job with this idempotency key is still in progress")
)

const maxIdempotencyKeyLen = 128

// SubmitJobInput is a job as submitted by an operator, before validation.
type SubmitJobInput struct {
	OperatorEmail string
	// CustomerID, when set, becomes the session's selected customer first.
	CustomerID     string
	VIN            string
	Service        string
	Qty            float64
	UnitPrice      float64
	IdempotencyKey string
}

// JobResult is the invoice a job landed on and the decoded vehicle.
// Replayed is true when an earlier submission with the same idempotency key
// already recorded the line.
type JobResult struct {
	Invoice  entities.Invoice
	Vehicle  entities.VehicleInfo
	Replayed bool
}

// IJobUseCase turns a locksmith job into a line on the selected customer's
// open invoice for today.
//
//   - RecordJob: selected customer -> catalog item -> today's invoice -> line
//   - SubmitJob: validation, optional customer selection, idempotency and VIN
//     decoding around RecordJob
type IJobUseCase interface {
	RecordJob(ctx context.Context, sessionID string, job entities.Job) (entities.Invoice, error)
	SubmitJob(ctx context.Context, sessionID string, in SubmitJobInput) (JobResult, error)
}

type JobUseCase struct {
	sessions interfaces.ISessionStore
	gateway  interfaces.IAccountingGateway
	vehicles interfaces.IVehicleDecoder
	receipts interfaces.IJobReceiptRepository
	metrics  *metrics.Metrics
	now      func() time.Time
}

var _ IJobUseCase = (*JobUseCase)(nil)

// NewJobUseCase wires the orchestrator. receipts may be nil, which disables
// idempotency keys.
func NewJobUseCase(
	sessions interfaces.ISessionStore,
	gateway interfaces.IAccountingGateway,
	vehicles interfaces.IVehicleDecoder,
	receipts interfaces.IJobReceiptRepository,
	m *metrics.Metrics,
) *JobUseCase {
	return &JobUseCase{
		sessions: sessions,
		gateway:  gateway,
		vehicles: vehicles,
		receipts: receipts,
		metrics:  m,
		now:      time.Now,
	}
}

func (u *JobUseCase) RecordJob(ctx context.Context, sessionID string, job entities.Job) (entities.Invoice, error) {
	if err := validateJob(job); err != nil {
		return entities.Invoice{}, err
	}
	customerRef, ok := u.sessions.Get(sessionID)
	if !ok || customerRef == "" {
		return entities.Invoice{}, ErrNoCustomerSelected
	}
	log := logger.FromContext(ctx).With(zap.String("customer_ref", customerRef), zap.String("vin", job.Vehicle.VIN))

	var updated entities.Invoice
	err := withCredentials(ctx, u.sessions, sessionID, func(creds *entities.CredentialPair) error {
		itemID, err := u.gateway.ResolveItemByName(ctx, creds, string(job.Service))
		if err != nil {
			return err
		}
		inv, err := u.gateway.FindOrCreateTodayInvoice(ctx, creds, customerRef)
		if err != nil {
			return err
		}
		line := entities.NewInvoiceLine(job.LineDescription(), job.Qty, job.UnitPrice, itemID)
		line.ItemName = string(job.Service)
		updated, err = u.gateway.AppendInvoiceLine(ctx, creds, inv.ID, line)
		return err
	})
	if err != nil {
		log.Warn("[job][usecase] record failed", zap.Error(err))
		return entities.Invoice{}, err
	}
	log.Info("[job][usecase] line recorded",
		zap.String("invoice_id", updated.ID),
		zap.String("service", string(job.Service)),
		zap.Float64("total_amt", updated.TotalAmt),
	)
	return updated, nil
}

func (u *JobUseCase) SubmitJob(ctx context.Context, sessionID string, in SubmitJobInput) (JobResult, error) {
	job, err := in.toJob()
	if err != nil {
		return JobResult{}, err
	}
	if id := strings.TrimSpace(in.CustomerID); id != "" {
		u.sessions.Set(sessionID, id)
	}
	customerRef, ok := u.sessions.Get(sessionID)
	if !ok || customerRef == "" {
		return JobResult{}, ErrNoCustomerSelected
	}
	log := logger.FromContext(ctx)

	receipt, replay, err := u.reserve(ctx, in, customerRef)
	if err != nil {
		return JobResult{}, err
	}
	if replay != nil {
		return u.replay(ctx, sessionID, *replay, job.Vehicle.VIN)
	}
	done := false
	defer func() {
		if !done {
			u.metrics.IncJob("failed")
		}
		if receipt.ID == "" || done {
			return
		}
		if relErr := u.receipts.Release(context.WithoutCancel(ctx), receipt.ID); relErr != nil {
			log.Warn("[job][usecase] release receipt failed", zap.String("receipt_id", receipt.ID), zap.Error(relErr))
		}
	}()

	vehicle, err := u.vehicles.Decode(ctx, job.Vehicle.VIN)
	if err != nil {
		return JobResult{}, err
	}
	job.Vehicle = vehicle

	inv, err := u.RecordJob(ctx, sessionID, job)
	if err != nil {
		return JobResult{}, err
	}
	done = true
	u.metrics.IncJob("recorded")

	if receipt.ID != "" {
		receipt.Status = entities.JobReceiptCompleted
		receipt.InvoiceID = inv.ID
		receipt.DocNumber = inv.DocNumber
		receipt.CompletedAt = u.now().UTC()
		// A receipt left pending only blocks retries of this key until it ages out.
		if _, cErr := u.receipts.Complete(context.WithoutCancel(ctx), receipt); cErr != nil {
			log.Warn("[job][usecase] complete receipt failed", zap.String("receipt_id", receipt.ID), zap.Error(cErr))
		}
	}
	return JobResult{Invoice: inv, Vehicle: vehicle}, nil
}

// reserve claims the idempotency key. A non-nil replay means an earlier
// submission owns the key.
func (u *JobUseCase) reserve(ctx context.Context, in SubmitJobInput, customerRef string) (entities.JobReceipt, *entities.JobReceipt, error) {
	key := strings.TrimSpace(in.IdempotencyKey)
	if key == "" || u.receipts == nil {
		return entities.JobReceipt{}, nil, nil
	}
	receipt := entities.JobReceipt{
		ID:          strings.ToLower(strings.TrimSpace(in.OperatorEmail)) + ":" + key,
		Status:      entities.JobReceiptPending,
		CustomerRef: customerRef,
		CreatedAt:   u.now().UTC(),
	}
	existing, err := u.receipts.Reserve(ctx, receipt)
	if errors.Is(err, interfaces.ErrJobReceiptExists) {
		return entities.JobReceipt{}, &existing, nil
	}
	if err != nil {
		return entities.JobReceipt{}, nil, err
	}
	return receipt, nil, nil
}

func (u *JobUseCase) replay(ctx context.Context, sessionID string, existing entities.JobReceipt, vin string) (JobResult, error) {
	if existing.Status != entities.JobReceiptCompleted || existing.InvoiceID == "" {
		return JobResult{}, ErrJobInProgress
	}
	var inv entities.Invoice
	err := withCredentials(ctx, u.sessions, sessionID, func(creds *entities.CredentialPair) error {
		var err error
		inv, err = u.gateway.GetInvoice(ctx, creds, existing.InvoiceID)
		return err
	})
	if err != nil {
		return JobResult{}, err
	}
	vehicle, err := u.vehicles.Decode(ctx, vin)
	if err != nil {
		logger.FromContext(ctx).Debug("[job][usecase] replay without vehicle details", zap.Error(err))
		vehicle = entities.VehicleInfo{VIN: vin}
	}
	u.metrics.IncJob("replayed")
	logger.FromContext(ctx).Info("[job][usecase] idempotent replay",
		zap.String("receipt_id", existing.ID),
		zap.String("invoice_id", inv.ID),
	)
	return JobResult{Invoice: inv, Vehicle: vehicle, Replayed: true}, nil
}

func (in SubmitJobInput) toJob() (entities.Job, error) {
	vin := strings.ToUpper(strings.TrimSpace(in.VIN))
	if len(vin) != entities.VINLength {
		return entities.Job{}, fmt.Errorf("%w: vin must be %d characters", ErrInvalidJob, entities.VINLength)
	}
	service, ok := entities.ParseServiceType(in.Service)
	if !ok {
		return entities.Job{}, fmt.Errorf("%w: unsupported service %q", ErrInvalidJob, in.Service)
	}
	if len(in.IdempotencyKey) > maxIdempotencyKeyLen {
		return entities.Job{}, fmt.Errorf("%w: idempotency key too long", ErrInvalidJob)
	}
	job := entities.Job{
		Vehicle:   entities.VehicleInfo{VIN: vin},
		Service:   service,
		Qty:       in.Qty,
		UnitPrice: in.UnitPrice,
	}
	return job, validateJob(job)
}

func validateJob(job entities.Job) error {
	switch {
	case job.Vehicle.VIN == "":
		return fmt.Errorf("%w: vin is required", ErrInvalidJob)
	case job.Service == "":
		return fmt.Errorf("%w: service is required", ErrInvalidJob)
	case !positive(job.Qty):
		return fmt.Errorf("%w: qty must be greater than zero", ErrInvalidJob)
	case !positive(job.UnitPrice):
		return fmt.Errorf("%w: unit price must be greater than zero", ErrInvalidJob)
	}
	return nil
}

func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
