package controller

import (
	"lls_backend/internal/model"
	"lls_backend/internal/service"
	"lls_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AdminController struct {
	AdminService *service.AdminService
}

func NewAdminController(adminService *service.AdminService) *AdminController {
	return &AdminController{AdminService: adminService}
}

type RecordPaymentRequest struct {
	StudentID uint                `json:"student_id" binding:"required"`
	Amount    decimal.Decimal     `json:"amount" swaggertype:"string" example:"1500.00"`
	Date      *string             `json:"date"`
	Method    model.PaymentMethod `json:"method" binding:"required,oneof=Card 'Bank Transfer' Cash"`
	Status    model.PaymentStatus `json:"status" binding:"omitempty,oneof=Pending Completed Failed"`
}

type IssueCertificateRequest struct {
	StudentID         uint                    `json:"student_id" binding:"required"`
	ResultID          *uint                   `json:"result_id"`
	CertificateNumber string                  `json:"certificate_number" binding:"max=50"`
	IssueDate         *string                 `json:"issue_date"`
	Status            model.CertificateStatus `json:"status" binding:"omitempty,oneof=Issued Pending Revoked"`
}

type SubmitFeedbackRequest struct {
	StudentID uint   `json:"student_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comments  string `json:"comments"`
}

type LogCommunicationRequest struct {
	SubmissionID *uint  `json:"submission_id"`
	ResultID     *uint  `json:"result_id"`
	Message      string `json:"message" binding:"required"`
}

// @Summary 记录缴费
// @Tags 管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RecordPaymentRequest true "缴费信息"
// @Success 201 {object} util.Response{data=model.Payment}
// @Router /api/admin/payments [post]
func (c *AdminController) RecordPayment(ctx *gin.Context) {
	var req RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if !req.Amount.IsPositive() {
		util.BadRequest(ctx, "amount must be greater than 0")
		return
	}

	payment := &model.Payment{
		StudentID: req.StudentID,
		Amount:    req.Amount.Round(2),
		Method:    req.Method,
		Status:    req.Status,
	}
	if req.Date != nil && *req.Date != "" {
		date, err := util.ParseDate("date", *req.Date)
		if err != nil {
			util.HandleError(ctx, err)
			return
		}
		payment.Date = date
	}

	if err := c.AdminService.RecordPayment(ctx.Request.Context(), payment); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.CreatedWithMessage(ctx, "Payment recorded", payment)
}

// @Summary 获取缴费记录
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Param student_id query int false "按学生过滤"
// @Success 200 {object} util.Response{data=[]model.Payment}
// @Router /api/admin/payments [get]
func (c *AdminController) GetPayments(ctx *gin.Context) {
	studentID, err := util.QueryID(ctx, "student_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	payments, err := c.AdminService.ListPayments(ctx.Request.Context(), studentID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, payments)
}

// @Summary 颁发证书
// @Description 未提供证书编号时自动生成
// @Tags 管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body IssueCertificateRequest true "证书信息"
// @Success 201 {object} util.Response{data=model.Certificate}
// @Failure 409 {object} util.Response
// @Router /api/admin/certificates [post]
func (c *AdminController) IssueCertificate(ctx *gin.Context) {
	var req IssueCertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	cert := &model.Certificate{
		StudentID:         req.StudentID,
		ResultID:          req.ResultID,
		CertificateNumber: req.CertificateNumber,
		Status:            req.Status,
	}
	if req.IssueDate != nil && *req.IssueDate != "" {
		date, err := util.ParseDate("issue_date", *req.IssueDate)
		if err != nil {
			util.HandleError(ctx, err)
			return
		}
		cert.IssueDate = date
	}

	if err := c.AdminService.IssueCertificate(ctx.Request.Context(), cert); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.CreatedWithMessage(ctx, "Certificate issued", cert)
}

// @Summary 获取证书列表
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Param student_id query int false "按学生过滤"
// @Success 200 {object} util.Response{data=[]model.Certificate}
// @Router /api/admin/certificates [get]
func (c *AdminController) GetCertificates(ctx *gin.Context) {
	studentID, err := util.QueryID(ctx, "student_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	certs, err := c.AdminService.ListCertificates(ctx.Request.Context(), studentID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, certs)
}

// @Summary 提交反馈
// @Tags 管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SubmitFeedbackRequest true "反馈内容"
// @Success 201 {object} util.Response{data=model.Feedback}
// @Router /api/admin/feedback [post]
func (c *AdminController) SubmitFeedback(ctx *gin.Context) {
	var req SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if !util.GetUserFromContext(ctx).CanActAsStudent(req.StudentID) {
		util.HandleError(ctx, util.ErrPermissionDenied)
		return
	}

	fb := &model.Feedback{
		StudentID: req.StudentID,
		Rating:    req.Rating,
		Comments:  req.Comments,
	}
	if err := c.AdminService.SubmitFeedback(ctx.Request.Context(), fb); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.CreatedWithMessage(ctx, "Feedback submitted", fb)
}

// @Summary 获取反馈列表
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Param student_id query int false "按学生过滤"
// @Success 200 {object} util.Response{data=[]model.Feedback}
// @Router /api/admin/feedback [get]
func (c *AdminController) GetFeedback(ctx *gin.Context) {
	studentID, err := util.QueryID(ctx, "student_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	feedback, err := c.AdminService.ListFeedback(ctx.Request.Context(), studentID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, feedback)
}

// @Summary 记录沟通
// @Description 仅留档，不会发送任何通知
// @Tags 管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LogCommunicationRequest true "沟通内容"
// @Success 201 {object} util.Response{data=model.Communication}
// @Router /api/admin/communications [post]
func (c *AdminController) LogCommunication(ctx *gin.Context) {
	var req LogCommunicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comm := &model.Communication{
		SubmissionID: req.SubmissionID,
		ResultID:     req.ResultID,
		Message:      req.Message,
	}
	if err := c.AdminService.LogCommunication(ctx.Request.Context(), comm); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.CreatedWithMessage(ctx, "Communication logged", comm)
}

// @Summary 获取沟通记录
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Param submission_id query int false "按提交过滤"
// @Param result_id query int false "按成绩过滤"
// @Success 200 {object} util.Response{data=[]model.Communication}
// @Router /api/admin/communications [get]
func (c *AdminController) GetCommunications(ctx *gin.Context) {
	submissionID, err := util.QueryID(ctx, "submission_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	resultID, err := util.QueryID(ctx, "result_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	comms, err := c.AdminService.ListCommunications(ctx.Request.Context(), submissionID, resultID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, comms)
}
