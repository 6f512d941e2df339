package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "locksmith_invoicing/internal/adapter/http/dto/request"
	response "locksmith_invoicing/internal/adapter/http/dto/response"
	"locksmith_invoicing/internal/adapter/http/middleware"
	"locksmith_invoicing/internal/usecase"
)

const HeaderIdempotencyKey = "Idempotency-Key"

// JobHandler records locksmith jobs on invoices.
type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// Submit godoc
// @Summary   Record a job
// @Description Decodes the VIN and appends a priced line to the selected customer's invoice for today, creating the invoice when needed.
// @Tags      jobs
// @Accept    json
// @Produce   json
// @Param     Idempotency-Key header string false "replays the first result for the same key"
// @Param     body body request.JobRequest true "job"
// @Success   201 {object} response.JobResponse
// @Success   200 {object} response.JobResponse "replayed"
// @Failure   400 {object} pkg.HTTPError
// @Failure   404 {object} pkg.HTTPError
// @Failure   409 {object} pkg.HTTPError
// @Failure   502 {object} pkg.HTTPError
// @Security  Bearer
// @Router    /jobs [post]
func (h *JobHandler) Submit(c *gin.Context) {
	var payload request.JobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	in := payload.ToInput(middleware.OperatorEmail(c), c.GetHeader(HeaderIdempotencyKey))
	res, err := h.usecase.SubmitJob(c.Request.Context(), middleware.SessionID(c), in)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	status := http.StatusCreated
	if res.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, response.FromJobResult(res))
}
