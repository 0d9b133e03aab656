package evaluate

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sheetscan/omr-backend/internal/controller"
	"github.com/sheetscan/omr-backend/internal/dto"
	"github.com/sheetscan/omr-backend/internal/repository"
	"github.com/sheetscan/omr-backend/internal/service"
)

type EvaluationController struct {
	evalSvc   service.EvaluationService
	resultSvc service.ResultService
}

func NewEvaluationController(evalSvc service.EvaluationService, resultSvc service.ResultService) *EvaluationController {
	return &EvaluationController{evalSvc: evalSvc, resultSvc: resultSvc}
}

// EvaluateSheet godoc
// @Summary Evaluate an uploaded OMR sheet
// @Description Stages the sheet image, scores it against the question paper and records the result
// @Tags evaluation
// @Accept multipart/form-data
// @Produce json
// @Param roll_number formData string true "Student roll number"
// @Param question_paper_id formData string true "Question paper ID"
// @Param omr_sheet formData file true "OMR sheet image"
// @Success 201 {object} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields or non-image upload"
// @Failure 404 {object} dto.ErrorResponse "Question paper not found"
// @Failure 500 {object} dto.ErrorResponse "Processing error"
// @Router /evaluate [post]
func (ctrl *EvaluationController) EvaluateSheet(c *gin.Context) {
	var req dto.EvaluationRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind EvaluationRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	fileHeader, err := c.FormFile("omr_sheet")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "omr_sheet file is required"})
		return
	}

	sheet, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded sheet")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "error reading uploaded file"})
		return
	}
	defer sheet.Close()

	resp, err := ctrl.evalSvc.Evaluate(req, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), sheet)
	if err != nil {
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetResults godoc
// @Summary List evaluation results
// @Tags evaluation
// @Produce json
// @Param roll_number query string false "Filter by roll number"
// @Param question_paper_id query string false "Filter by question paper ID"
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Maximum records to return" default(10)
// @Success 200 {array} dto.ResultResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /evaluate/results [get]
func (ctrl *EvaluationController) GetResults(c *gin.Context) {
	skip, limit := controller.Pagination(c)
	filter := repository.ResultFilter{
		RollNumber:      c.Query("roll_number"),
		QuestionPaperID: c.Query("question_paper_id"),
	}

	resp, err := ctrl.resultSvc.List(filter, skip, limit)
	if err != nil {
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetResult godoc
// @Summary Get an evaluation result by ID
// @Tags evaluation
// @Produce json
// @Param result_id path int true "Result ID"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /evaluate/results/{result_id} [get]
func (ctrl *EvaluationController) GetResult(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("result_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid result ID format"})
		return
	}

	resp, err := ctrl.resultSvc.Get(uint(id))
	if err != nil {
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
