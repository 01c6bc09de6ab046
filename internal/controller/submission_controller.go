package controller

import (
	"lls_backend/internal/service"
	"lls_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	SubmissionService *service.SubmissionService
	EvaluationService *service.EvaluationService
}

func NewSubmissionController(submissionService *service.SubmissionService, evaluationService *service.EvaluationService) *SubmissionController {
	return &SubmissionController{
		SubmissionService: submissionService,
		EvaluationService: evaluationService,
	}
}

type SubmitAssignmentRequest struct {
	AssignmentID   uint    `json:"assignment_id" binding:"required"`
	StudentID      uint    `json:"student_id" binding:"required"`
	AssignmentText *string `json:"assignment_text"`
	FilePath       *string `json:"file_path" binding:"omitempty,max=255"`
}

type EvaluateSubmissionRequest struct {
	SubmissionID uint     `json:"submission_id" binding:"required"`
	Marks        *float64 `json:"marks" binding:"required"`
	Feedback     *string  `json:"feedback"`
	EvaluatedBy  *uint    `json:"evaluated_by"`
}

// @Summary 提交作业
// @Description 同一学生同一作业只保留一条提交，重复提交覆盖内容；新建返回 201，覆盖返回 200
// @Tags 作业提交
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SubmitAssignmentRequest true "提交内容"
// @Success 200 {object} util.Response{data=service.SubmitAssignmentResult}
// @Success 201 {object} util.Response{data=service.SubmitAssignmentResult}
// @Failure 403 {object} util.Response
// @Router /api/learning/assignments/submit [post]
// @Router /api/submission/submissions [post]
func (c *SubmissionController) SubmitAssignment(ctx *gin.Context) {
	var req SubmitAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if !util.GetUserFromContext(ctx).CanActAsStudent(req.StudentID) {
		util.HandleError(ctx, util.ErrPermissionDenied)
		return
	}

	result, err := c.SubmissionService.SubmitAssignment(ctx.Request.Context(), service.SubmitAssignmentInput{
		AssignmentID:   req.AssignmentID,
		StudentID:      req.StudentID,
		AssignmentText: req.AssignmentText,
		FilePath:       req.FilePath,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	if result.Created {
		util.CreatedWithMessage(ctx, "Assignment submitted successfully", result)
		return
	}
	util.SuccessWithMessage(ctx, "Assignment submission updated", result)
}

// @Summary 获取学生在材料下的作业提交
// @Tags 作业提交
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "学生ID"
// @Param material_id path int true "材料ID"
// @Success 200 {object} util.Response{data=[]model.StudentSubmissionRow}
// @Router /api/learning/student/{student_id}/material/{material_id}/submissions [get]
func (c *SubmissionController) GetStudentMaterialSubmissions(ctx *gin.Context) {
	studentID, err := util.ParamID(ctx, "student_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	materialID, err := util.ParamID(ctx, "material_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	rows, err := c.SubmissionService.GetSubmissionsForStudentMaterial(ctx.Request.Context(), studentID, materialID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

// @Summary 评价作业提交
// @Description 首次评价生成成绩，返回 201；再次评价只更新评分和评语，返回 200
// @Tags 作业提交
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EvaluateSubmissionRequest true "评价内容"
// @Success 200 {object} util.Response{data=service.EvaluateResult}
// @Success 201 {object} util.Response{data=service.EvaluateResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/submission/evaluations [post]
func (c *SubmissionController) EvaluateSubmission(ctx *gin.Context) {
	var req EvaluateSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	evaluatedBy := req.EvaluatedBy
	if evaluatedBy == nil {
		if user := util.GetUserFromContext(ctx); user != nil && user.UserID != 0 {
			evaluatedBy = &user.UserID
		}
	}

	result, err := c.EvaluationService.EvaluateSubmission(ctx.Request.Context(), service.EvaluateInput{
		SubmissionID: req.SubmissionID,
		Marks:        *req.Marks,
		Feedback:     req.Feedback,
		EvaluatedBy:  evaluatedBy,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	if result.Created {
		util.CreatedWithMessage(ctx, "Evaluation saved successfully", result)
		return
	}
	util.SuccessWithMessage(ctx, "Evaluation updated successfully", result)
}

// @Summary 获取学生成绩
// @Description 作业成绩的分数来自关联的评价，测验成绩分数为空
// @Tags 作业提交
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "学生ID"
// @Success 200 {object} util.Response{data=[]model.StudentResultRow}
// @Router /api/submission/students/{student_id}/results [get]
func (c *SubmissionController) GetStudentResults(ctx *gin.Context) {
	studentID, err := util.ParamID(ctx, "student_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	results, err := c.EvaluationService.GetResultsForStudent(ctx.Request.Context(), studentID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// @Summary 获取教师名下的全部作业提交
// @Tags 作业提交
// @Produce json
// @Security BearerAuth
// @Param staff_id path int true "教职工ID"
// @Success 200 {object} util.Response{data=[]model.StaffSubmissionRow}
// @Failure 403 {object} util.Response
// @Router /api/submission/staff/{staff_id}/submissions [get]
func (c *SubmissionController) GetStaffSubmissions(ctx *gin.Context) {
	staffID, err := util.ParamID(ctx, "staff_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	if !util.GetUserFromContext(ctx).CanActAsStaff(staffID) {
		util.HandleError(ctx, util.ErrPermissionDenied)
		return
	}

	rows, err := c.SubmissionService.GetSubmissionsForStaff(ctx.Request.Context(), staffID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}
