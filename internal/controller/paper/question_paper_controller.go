package paper

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sheetscan/omr-backend/internal/controller"
	"github.com/sheetscan/omr-backend/internal/dto"
	"github.com/sheetscan/omr-backend/internal/service"
)

type QuestionPaperController struct {
	paperSvc service.QuestionPaperService
}

func NewQuestionPaperController(paperSvc service.QuestionPaperService) *QuestionPaperController {
	return &QuestionPaperController{paperSvc: paperSvc}
}

// CreateQuestionPaper godoc
// @Summary Create a new question paper
// @Description Store an answer key document; details must contain "questions" and "answers"
// @Tags questions
// @Accept json
// @Produce json
// @Param question_paper body dto.QuestionPaperCreateRequest true "Question paper details"
// @Success 201 {object} dto.QuestionPaperResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Router /questions [post]
func (ctrl *QuestionPaperController) CreateQuestionPaper(c *gin.Context) {
	var req dto.QuestionPaperCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind QuestionPaperCreateRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.paperSvc.Create(req)
	if err != nil {
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetQuestionPapers godoc
// @Summary List question papers
// @Tags questions
// @Produce json
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Maximum records to return" default(10)
// @Success 200 {array} dto.QuestionPaperResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (ctrl *QuestionPaperController) GetQuestionPapers(c *gin.Context) {
	skip, limit := controller.Pagination(c)

	resp, err := ctrl.paperSvc.List(skip, limit)
	if err != nil {
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetQuestionPaper godoc
// @Summary Get a question paper by ID
// @Tags questions
// @Produce json
// @Param question_paper_id path string true "Question paper ID"
// @Success 200 {object} dto.QuestionPaperResponse
// @Failure 404 {object} dto.ErrorResponse "Question paper not found"
// @Router /questions/{question_paper_id} [get]
func (ctrl *QuestionPaperController) GetQuestionPaper(c *gin.Context) {
	resp, err := ctrl.paperSvc.Get(c.Param("question_paper_id"))
	if err != nil {
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateQuestionPaper godoc
// @Summary Replace a question paper's details
// @Tags questions
// @Accept json
// @Produce json
// @Param question_paper_id path string true "Question paper ID"
// @Param question_paper body dto.QuestionPaperCreateRequest true "New details"
// @Success 200 {object} dto.QuestionPaperResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Question paper not found"
// @Router /questions/{question_paper_id} [put]
func (ctrl *QuestionPaperController) UpdateQuestionPaper(c *gin.Context) {
	var req dto.QuestionPaperCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind QuestionPaperCreateRequest for update")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.paperSvc.Update(c.Param("question_paper_id"), req)
	if err != nil {
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteQuestionPaper godoc
// @Summary Delete a question paper and its results
// @Tags questions
// @Produce json
// @Param question_paper_id path string true "Question paper ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Question paper not found"
// @Router /questions/{question_paper_id} [delete]
func (ctrl *QuestionPaperController) DeleteQuestionPaper(c *gin.Context) {
	id := c.Param("question_paper_id")
	if err := ctrl.paperSvc.Delete(id); err != nil {
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Question paper " + id + " deleted successfully"})
}
