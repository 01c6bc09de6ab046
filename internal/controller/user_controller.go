package controller

import (
	"lls_backend/internal/model"
	"lls_backend/internal/service"
	"lls_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	StaffService *service.StaffService
}

func NewStaffController(staffService *service.StaffService) *StaffController {
	return &StaffController{StaffService: staffService}
}

type CreateStaffRequest struct {
	Name           string             `json:"name" binding:"required,max=100"`
	Email          string             `json:"email" binding:"required,email"`
	Password       string             `json:"password" binding:"omitempty,min=6"`
	Phone          string             `json:"phone" binding:"max=20"`
	Qualifications string             `json:"qualifications"`
	Status         model.RecordStatus `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

type UpdateStaffRequest struct {
	Name           *string             `json:"name" binding:"omitempty,max=100"`
	Email          *string             `json:"email" binding:"omitempty,email"`
	Password       *string             `json:"password" binding:"omitempty,min=6"`
	Phone          *string             `json:"phone" binding:"omitempty,max=20"`
	Qualifications *string             `json:"qualifications"`
	Status         *model.RecordStatus `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

// @Summary 创建教职工
// @Description 密码以 bcrypt 哈希保存，不提供密码时账号不可登录
// @Tags 教职工
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateStaffRequest true "教职工信息"
// @Success 201 {object} util.Response{data=model.Staff}
// @Failure 409 {object} util.Response
// @Router /api/staff/staff [post]
func (c *StaffController) CreateStaff(ctx *gin.Context) {
	var req CreateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	staff := &model.Staff{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Qualifications: req.Qualifications,
		Status:         req.Status,
	}
	if err := c.StaffService.CreateStaff(ctx.Request.Context(), staff, req.Password); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.CreatedWithMessage(ctx, "Staff created successfully", staff)
}

// @Summary 获取教职工列表
// @Tags 教职工
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.StaffListRow}
// @Router /api/staff/staff [get]
func (c *StaffController) GetStaff(ctx *gin.Context) {
	staff, err := c.StaffService.ListStaff(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, staff)
}

// @Summary 更新教职工
// @Description 只更新请求中出现的字段
// @Tags 教职工
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param staff_id path int true "教职工ID"
// @Param request body UpdateStaffRequest true "更新内容"
// @Success 200 {object} util.Response{data=model.Staff}
// @Failure 404 {object} util.Response
// @Router /api/staff/staff/{staff_id} [put]
func (c *StaffController) UpdateStaff(ctx *gin.Context) {
	id, err := util.ParamID(ctx, "staff_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	var req UpdateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	staff, err := c.StaffService.UpdateStaff(ctx.Request.Context(), id, service.StaffUpdate{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Qualifications: req.Qualifications,
		Status:         req.Status,
		Password:       req.Password,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessWithMessage(ctx, "Staff updated successfully", staff)
}

type StudentController struct {
	StudentService *service.StudentService
}

func NewStudentController(studentService *service.StudentService) *StudentController {
	return &StudentController{StudentService: studentService}
}

type StudentRequest struct {
	Name          string  `json:"name" binding:"required,max=100"`
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"omitempty,min=6"`
	DOB           *string `json:"dob"`
	Contact       string  `json:"contact" binding:"max=20"`
	ParentName    string  `json:"parent_name" binding:"max=100"`
	ParentContact string  `json:"parent_contact" binding:"max=20"`
	ParentEmail   string  `json:"parent_email" binding:"omitempty,email"`
	ProgramID     *uint   `json:"program_id"`
	CourseID      *uint   `json:"course_id"`
}

func (r *StudentRequest) toModel() (*model.Student, error) {
	dob, err := util.ParseOptionalDate("dob", r.DOB)
	if err != nil {
		return nil, err
	}
	return &model.Student{
		Name:          r.Name,
		Email:         r.Email,
		DOB:           dob,
		Contact:       r.Contact,
		ParentName:    r.ParentName,
		ParentContact: r.ParentContact,
		ParentEmail:   r.ParentEmail,
		ProgramID:     r.ProgramID,
		CourseID:      r.CourseID,
	}, nil
}

// @Summary 学生注册
// @Description 公开接口，邮箱已注册时返回 400
// @Tags 学生
// @Accept json
// @Produce json
// @Param request body StudentRequest true "学生信息"
// @Success 201 {object} util.Response{data=model.Student}
// @Failure 400 {object} util.Response
// @Router /api/student/register [post]
func (c *StudentController) Register(ctx *gin.Context) {
	var req StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, err := req.toModel()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	if err := c.StudentService.Register(ctx.Request.Context(), student, req.Password); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.CreatedWithMessage(ctx, "Student registered successfully", student)
}

// @Summary 创建学生
// @Tags 学生
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body StudentRequest true "学生信息"
// @Success 201 {object} util.Response{data=model.Student}
// @Failure 409 {object} util.Response
// @Router /api/student/students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, err := req.toModel()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	if err := c.StudentService.CreateStudent(ctx.Request.Context(), student, req.Password); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.CreatedWithMessage(ctx, "Student created successfully", student)
}

// @Summary 获取学生列表
// @Tags 学生
// @Produce json
// @Security BearerAuth
// @Param program_id query int false "按专业过滤"
// @Param course_id query int false "按课程过滤"
// @Success 200 {object} util.Response{data=[]model.StudentListRow}
// @Router /api/student/students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	programID, err := util.QueryID(ctx, "program_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	courseID, err := util.QueryID(ctx, "course_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	students, err := c.StudentService.ListStudents(ctx.Request.Context(), programID, courseID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, students)
}

// @Summary 获取学生资料
// @Tags 学生
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "学生ID"
// @Success 200 {object} util.Response{data=model.Student}
// @Failure 404 {object} util.Response
// @Router /api/student/students/{student_id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, err := util.ParamID(ctx, "student_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	if !util.GetUserFromContext(ctx).CanActAsStudent(id) {
		util.HandleError(ctx, util.ErrPermissionDenied)
		return
	}

	student, err := c.StudentService.GetStudent(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, student)
}

// @Summary 获取教职工所授课程的学生
// @Description 指定 course_id 时，该课程必须由此教职工讲授，否则返回 403
// @Tags 学生
// @Produce json
// @Security BearerAuth
// @Param staff_id path int true "教职工ID"
// @Param course_id query int false "按课程过滤"
// @Success 200 {object} util.Response{data=[]model.StudentListRow}
// @Failure 403 {object} util.Response
// @Router /api/student/staff/{staff_id}/students [get]
func (c *StudentController) GetStaffStudents(ctx *gin.Context) {
	staffID, err := util.ParamID(ctx, "staff_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	courseID, err := util.QueryID(ctx, "course_id")
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	if !util.GetUserFromContext(ctx).CanActAsStaff(staffID) {
		util.HandleError(ctx, util.ErrPermissionDenied)
		return
	}

	students, err := c.StudentService.ListStaffStudents(ctx.Request.Context(), staffID, courseID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, students)
}
