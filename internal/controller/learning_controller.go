package controller

import (
	"lls_backend/internal/model"
	"lls_backend/internal/service"
	"lls_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type LearningController struct {
	LearningService *service.LearningService
	QuizService     *service.QuizService
	ProgressService *service.ProgressService
	AcademicService *service.AcademicService
}

func NewLearningController(
	learningService *service.LearningService,
	quizService *service.QuizService,
	progressService *service.ProgressService,
	academicService *service.AcademicService,
) *LearningController {
	return &LearningController{
		LearningService: learningService,
		QuizService:     quizService,
		ProgressService: progressService,
		AcademicService: academicService,
	}
}

type SubmitQuizRequest struct {
	StudentID uint                 `json:"student_id" binding:"required"`
	Answers   []service.QuizAnswer `json:"answers" binding:"required,dive"`
}

type CreateMaterialRequest struct {
	CourseID        uint               `json:"course_id" binding:"required"`
	Title           string             `json:"title" binding:"required,max=200"`
	Description     string             `json:"description"`
	MaterialType    model.MaterialType `json:"material_type" binding:"omitempty,oneof=video document quiz assignment"`
	VideoURL        string             `json:"video_url" binding:"max=500"`
	FilePath        string             `json:"file_path" binding:"max=255"`
	DurationMinutes *int               `json:"duration_minutes" binding:"omitempty,min=0"`
	UploadedBy      *uint              `json:"uploaded_by"`
}

type CreateAssignmentRequest struct {
	MaterialID   uint    `json:"material_id" binding:"required"`
	Title        string  `json:"title" binding:"required,max=200"`
	Instructions string  `json:"instructions"`
	DueDate      *string `json:"due_date"`
}

type CreateMCQRequest struct {
	MaterialID    uint   `json:"material_id" binding:"required"`
	Question      string `json:"question" binding:"required"`
	OptionA       string `json:"option_a" binding:"required"`
	OptionB       string `json:"option_b" binding:"required"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option" binding:"required,mcq_option"`
}

// @Summary 提交测验
// @Description 批量判分，每题成绩按 (学生, 题目) 覆盖写入；不存在的题目被跳过但计入总数
// @Tags 学习模块
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SubmitQuizRequest true "答题列表"
// @Success 200 {object} util.Response{data=service.QuizSubmissionResult}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/learning/quiz/submit [post]
func (c *LearningController) SubmitQuiz(ctx *gin.Context) {
	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if !util.GetUserFromContext(ctx).CanActAsStudent(req.StudentID) {
		util.HandleError(ctx, util.ErrPermissionDenied)
		return
	}

	result, err := c.QuizService.SubmitQuiz(ctx.Request.Context(), req.StudentID, req.Answers)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.SuccessWithMessage(ctx, "Quiz submitted successfully", result)
}

// @Summary 获取测验成绩
// @Tags 学习模块
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "学生ID"
// @Param material_id path int true "材料ID"
// @Success 200 {object} util.Response{data=[]model.QuizResultRow}
// @Router /api/learning/quiz/results/{student_id}/{material_id} [get]
func (c *LearningController) GetQuizResults(ctx *gin.Context) {
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

	results, err := c.QuizService.GetQuizResults(ctx.Request.Context(), studentID, materialID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// @Summary 获取课程学习进度
// @Description 有成绩即算完成测验，有提交即算完成作业
// @Tags 学习模块
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "学生ID"
// @Param course_id path int true "课程ID"
// @Success 200 {object} util.Response{data=model.CourseProgress}
// @Router /api/learning/student/{student_id}/course/{course_id}/progress [get]
func (c *LearningController) GetCourseProgress(ctx *gin.Context) {
	studentID, err := util.ParamID(ctx, "student_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	courseID, err := util.ParamID(ctx, "course_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	progress, err := c.ProgressService.ComputeProgress(ctx.Request.Context(), studentID, courseID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// @Summary 创建学习材料
// @Tags 学习模块
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateMaterialRequest true "材料信息"
// @Success 201 {object} util.Response{data=model.StudyMaterial}
// @Router /api/learning/materials [post]
func (c *LearningController) CreateMaterial(ctx *gin.Context) {
	var req CreateMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	material := &model.StudyMaterial{
		CourseID:        req.CourseID,
		Title:           req.Title,
		Description:     req.Description,
		MaterialType:    req.MaterialType,
		VideoURL:        req.VideoURL,
		FilePath:        req.FilePath,
		DurationMinutes: req.DurationMinutes,
		UploadedBy:      req.UploadedBy,
	}
	if material.UploadedBy == nil {
		if user := util.GetUserFromContext(ctx); user != nil && user.Role == model.RoleStaff {
			material.UploadedBy = &user.UserID
		}
	}

	if err := c.LearningService.CreateMaterial(ctx.Request.Context(), material); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.CreatedWithMessage(ctx, "Material uploaded successfully", material)
}

// @Summary 上传学习材料文件
// @Description 文件保存到配置的存储后端，视频会自动读取时长
// @Tags 学习模块
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "材料文件"
// @Param course_id formData int true "课程ID"
// @Param title formData string true "标题"
// @Param description formData string false "描述"
// @Param material_type formData string false "材料类型"
// @Success 201 {object} util.Response{data=model.StudyMaterial}
// @Router /api/learning/materials/upload [post]
func (c *LearningController) UploadMaterial(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, util.MaxUploadSize)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	courseID := util.MustParseUint(ctx.PostForm("course_id"))
	title := ctx.PostForm("title")
	if courseID == 0 || title == "" {
		util.BadRequest(ctx, "course_id and title are required")
		return
	}

	materialType := model.MaterialType(ctx.PostForm("material_type"))
	switch materialType {
	case "", model.MaterialVideo, model.MaterialDocument, model.MaterialQuiz, model.MaterialAssignment:
	default:
		util.BadRequest(ctx, "invalid material_type")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	in := service.UploadMaterialInput{
		CourseID:     courseID,
		Title:        title,
		Description:  ctx.PostForm("description"),
		MaterialType: materialType,
		FileName:     fileHeader.Filename,
		File:         file,
	}
	if user := util.GetUserFromContext(ctx); user != nil && user.Role == model.RoleStaff {
		in.UploadedBy = &user.UserID
	}

	material, err := c.LearningService.UploadMaterial(ctx.Request.Context(), in)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.CreatedWithMessage(ctx, "Material uploaded successfully", material)
}

// @Summary 获取课程材料列表
// @Tags 学习模块
// @Produce json
// @Security BearerAuth
// @Param course_id path int true "课程ID"
// @Success 200 {object} util.Response{data=[]model.MaterialSummary}
// @Router /api/learning/courses/{course_id}/materials [get]
func (c *LearningController) GetCourseMaterials(ctx *gin.Context) {
	courseID, err := util.ParamID(ctx, "course_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	materials, err := c.LearningService.ListCourseMaterials(ctx.Request.Context(), courseID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, materials)
}

// @Summary 获取材料详情
// @Description 包含作业和单选题，单选题不返回正确答案
// @Tags 学习模块
// @Produce json
// @Security BearerAuth
// @Param material_id path int true "材料ID"
// @Success 200 {object} util.Response{data=model.MaterialDetail}
// @Failure 404 {object} util.Response
// @Router /api/learning/materials/{material_id} [get]
func (c *LearningController) GetMaterial(ctx *gin.Context) {
	id, err := util.ParamID(ctx, "material_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	material, err := c.LearningService.GetMaterial(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, material)
}

// @Summary 删除材料
// @Description 级联删除其作业、提交、评价、单选题和相关成绩
// @Tags 学习模块
// @Produce json
// @Security BearerAuth
// @Param material_id path int true "材料ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/learning/materials/{material_id} [delete]
func (c *LearningController) DeleteMaterial(ctx *gin.Context) {
	id, err := util.ParamID(ctx, "material_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	if err := c.LearningService.DeleteMaterial(ctx.Request.Context(), id); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessWithMessage(ctx, "Material deleted successfully", nil)
}

// @Summary 创建作业
// @Tags 学习模块
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAssignmentRequest true "作业信息"
// @Success 201 {object} util.Response{data=model.Assignment}
// @Router /api/learning/assignments [post]
func (c *LearningController) CreateAssignment(ctx *gin.Context) {
	var req CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	dueDate, err := util.ParseOptionalDate("due_date", req.DueDate)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	assignment := &model.Assignment{
		MaterialID:   req.MaterialID,
		Title:        req.Title,
		Instructions: req.Instructions,
		DueDate:      dueDate,
	}
	if err := c.LearningService.CreateAssignment(ctx.Request.Context(), assignment); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.CreatedWithMessage(ctx, "Assignment created successfully", assignment)
}

// @Summary 获取材料下的作业
// @Tags 学习模块
// @Produce json
// @Security BearerAuth
// @Param material_id path int true "材料ID"
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Router /api/learning/materials/{material_id}/assignments [get]
func (c *LearningController) GetAssignments(ctx *gin.Context) {
	id, err := util.ParamID(ctx, "material_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	assignments, err := c.LearningService.ListAssignments(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// @Summary 创建单选题
// @Tags 学习模块
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateMCQRequest true "题目信息"
// @Success 201 {object} util.Response{data=model.MCQ}
// @Router /api/learning/mcqs [post]
func (c *LearningController) CreateMCQ(ctx *gin.Context) {
	var req CreateMCQRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	mcq := &model.MCQ{
		MaterialID:    req.MaterialID,
		Question:      req.Question,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectOption: req.CorrectOption,
	}
	if err := c.LearningService.CreateMCQ(ctx.Request.Context(), mcq); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.CreatedWithMessage(ctx, "Quiz question created successfully", mcq)
}

// @Summary 获取材料下的单选题
// @Description 不返回正确答案
// @Tags 学习模块
// @Produce json
// @Security BearerAuth
// @Param material_id path int true "材料ID"
// @Success 200 {object} util.Response{data=[]model.MCQ}
// @Router /api/learning/materials/{material_id}/mcqs [get]
func (c *LearningController) GetMCQs(ctx *gin.Context) {
	id, err := util.ParamID(ctx, "material_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	mcqs, err := c.LearningService.ListMCQs(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, mcqs)
}

// @Summary 删除单选题
// @Tags 学习模块
// @Produce json
// @Security BearerAuth
// @Param mcq_id path int true "题目ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/learning/mcqs/{mcq_id} [delete]
func (c *LearningController) DeleteMCQ(ctx *gin.Context) {
	id, err := util.ParamID(ctx, "mcq_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	if err := c.LearningService.DeleteMCQ(ctx.Request.Context(), id); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessWithMessage(ctx, "Quiz question deleted successfully", nil)
}

// @Summary 获取教师所授课程
// @Tags 学习模块
// @Produce json
// @Security BearerAuth
// @Param staff_id path int true "教职工ID"
// @Success 200 {object} util.Response{data=[]model.CourseSummary}
// @Router /api/learning/staff/{staff_id}/courses [get]
func (c *LearningController) GetStaffCourses(ctx *gin.Context) {
	staffID, err := util.ParamID(ctx, "staff_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	courses, err := c.AcademicService.ListStaffCourses(ctx.Request.Context(), staffID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}
