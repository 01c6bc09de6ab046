package controller

import (
	"lls_backend/internal/model"
	"lls_backend/internal/service"
	"lls_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AcademicController struct {
	AcademicService *service.AcademicService
}

func NewAcademicController(academicService *service.AcademicService) *AcademicController {
	return &AcademicController{AcademicService: academicService}
}

type CreateAcademicYearRequest struct {
	Year      string             `json:"year" binding:"required,max=20"`
	StartDate string             `json:"start_date" binding:"required"`
	EndDate   string             `json:"end_date" binding:"required"`
	Status    model.RecordStatus `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

type CreateProgramRequest struct {
	ProgramName    string             `json:"program_name" binding:"required,max=100"`
	Description    string             `json:"description"`
	DurationMonths *int               `json:"duration_months" binding:"omitempty,min=1"`
	Semester       int                `json:"semester" binding:"omitempty,min=1"`
	AcademicYearID *uint              `json:"academic_year_id"`
	Status         model.RecordStatus `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

type CreateCourseRequest struct {
	CourseName  string             `json:"course_name" binding:"required,max=100"`
	Description string             `json:"description"`
	Credits     *int               `json:"credits" binding:"omitempty,min=0"`
	StaffID     *uint              `json:"staff_id"`
	Status      model.RecordStatus `json:"status" binding:"omitempty,oneof=Active Inactive"`
	ProgramIDs  []uint             `json:"program_ids"`
}

type AddProgramCourseRequest struct {
	CourseID uint `json:"course_id" binding:"required"`
	Semester int  `json:"semester" binding:"required,min=1"`
}

// @Summary 创建学年
// @Tags 教务
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAcademicYearRequest true "学年信息，日期格式 YYYY-MM-DD"
// @Success 201 {object} util.Response{data=model.AcademicYear}
// @Router /api/academic/academic-years [post]
func (c *AcademicController) CreateAcademicYear(ctx *gin.Context) {
	var req CreateAcademicYearRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	start, err := util.ParseDate("start_date", req.StartDate)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	end, err := util.ParseDate("end_date", req.EndDate)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	year := &model.AcademicYear{
		Year:      req.Year,
		StartDate: start,
		EndDate:   end,
		Status:    req.Status,
	}
	if err := c.AcademicService.CreateAcademicYear(ctx.Request.Context(), year); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.CreatedWithMessage(ctx, "Academic Year created successfully", year)
}

// @Summary 获取学年列表
// @Tags 教务
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.AcademicYear}
// @Router /api/academic/academic-years [get]
func (c *AcademicController) GetAcademicYears(ctx *gin.Context) {
	years, err := c.AcademicService.ListAcademicYears(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, years)
}

// @Summary 创建专业
// @Tags 教务
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProgramRequest true "专业信息"
// @Success 201 {object} util.Response{data=model.Program}
// @Router /api/academic/programs [post]
func (c *AcademicController) CreateProgram(ctx *gin.Context) {
	var req CreateProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	program := &model.Program{
		ProgramName:    req.ProgramName,
		Description:    req.Description,
		DurationMonths: req.DurationMonths,
		Semester:       req.Semester,
		AcademicYearID: req.AcademicYearID,
		Status:         req.Status,
	}
	if err := c.AcademicService.CreateProgram(ctx.Request.Context(), program); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.CreatedWithMessage(ctx, "Program created successfully", program)
}

// @Summary 获取专业列表
// @Tags 教务
// @Produce json
// @Security BearerAuth
// @Param academic_year_id query int false "按学年过滤"
// @Success 200 {object} util.Response{data=[]model.ProgramDetail}
// @Router /api/academic/programs [get]
func (c *AcademicController) GetPrograms(ctx *gin.Context) {
	yearID, err := util.QueryID(ctx, "academic_year_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	programs, err := c.AcademicService.ListPrograms(ctx.Request.Context(), yearID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, programs)
}

// @Summary 创建课程
// @Description program_ids 中的专业会与课程关联，学期默认为 1
// @Tags 教务
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCourseRequest true "课程信息"
// @Success 201 {object} util.Response{data=model.Course}
// @Router /api/academic/courses [post]
func (c *AcademicController) CreateCourse(ctx *gin.Context) {
	var req CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course := &model.Course{
		CourseName:  req.CourseName,
		Description: req.Description,
		Credits:     req.Credits,
		StaffID:     req.StaffID,
		Status:      req.Status,
	}
	if err := c.AcademicService.CreateCourse(ctx.Request.Context(), course, req.ProgramIDs); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.CreatedWithMessage(ctx, "Course created successfully", course)
}

// @Summary 获取课程列表
// @Description 包含授课教师姓名和关联专业
// @Tags 教务
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.CourseDetail}
// @Router /api/academic/courses [get]
func (c *AcademicController) GetCourses(ctx *gin.Context) {
	courses, err := c.AcademicService.ListCourses(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary 为专业添加课程
// @Tags 教务
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param program_id path int true "专业ID"
// @Param request body AddProgramCourseRequest true "课程与学期"
// @Success 201 {object} util.Response{data=model.ProgramCourse}
// @Failure 409 {object} util.Response
// @Router /api/academic/programs/{program_id}/courses [post]
func (c *AcademicController) AddCourseToProgram(ctx *gin.Context) {
	programID, err := util.ParamID(ctx, "program_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	var req AddProgramCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	link := &model.ProgramCourse{
		ProgramID: programID,
		CourseID:  req.CourseID,
		Semester:  req.Semester,
	}
	if err := c.AcademicService.AddCourseToProgram(ctx.Request.Context(), link); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.CreatedWithMessage(ctx, "Course added to program successfully", link)
}

// @Summary 获取专业下的课程
// @Tags 教务
// @Produce json
// @Security BearerAuth
// @Param program_id path int true "专业ID"
// @Success 200 {object} util.Response{data=[]model.ProgramCourseRow}
// @Router /api/academic/programs/{program_id}/courses [get]
func (c *AcademicController) GetProgramCourses(ctx *gin.Context) {
	programID, err := util.ParamID(ctx, "program_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	rows, err := c.AcademicService.ListProgramCourses(ctx.Request.Context(), programID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

// @Summary 获取教职工所授课程
// @Tags 教务
// @Produce json
// @Security BearerAuth
// @Param staff_id path int true "教职工ID"
// @Success 200 {object} util.Response{data=[]model.CourseSummary}
// @Router /api/academic/staff/{staff_id}/courses [get]
func (c *AcademicController) GetStaffCourses(ctx *gin.Context) {
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
