package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autismcare_backend/internals/features/schools/schools/dto"
	"autismcare_backend/internals/features/schools/schools/repository"
	helper "autismcare_backend/internals/helpers"
	"autismcare_backend/internals/softdelete"
)

const entitySchool = "School"

type SchoolController struct {
	Repo repository.SchoolRepository
	Log  *zap.Logger
}

func NewSchoolController(db *gorm.DB, log *zap.Logger) *SchoolController {
	return &SchoolController{Repo: repository.NewSchoolRepository(db), Log: log}
}

// =======================
// Create
// =======================
func (ctl *SchoolController) Create(c *fiber.Ctx) error {
	var req dto.SchoolRequest
	if fe := helper.BindAndValidate(c, &req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	m := req.ToModel()
	if err := ctl.Repo.Create(helper.ReqCtx(c), m); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	return helper.JsonCreated(c, dto.ToSchoolResponse(m))
}

// =======================
// List / Detail
// =======================
func (ctl *SchoolController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)
	rows, total, err := ctl.Repo.List(helper.ReqCtx(c), softdelete.ListOptions{
		Offset: pg.Offset,
		Limit:  pg.Limit,
	})
	if err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	return helper.JsonList(c, dto.ToSchoolResponses(rows), total, pg.Paged)
}

func (ctl *SchoolController) Get(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entitySchool)
	}
	m, err := ctl.Repo.Find(helper.ReqCtx(c), id)
	if err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entitySchool))
	}
	return helper.JsonOK(c, dto.ToSchoolResponse(m))
}

// =======================
// Update / Delete
// =======================
func (ctl *SchoolController) Update(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entitySchool)
	}
	ctx := helper.ReqCtx(c)
	m, err := ctl.Repo.Find(ctx, id)
	if err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entitySchool))
	}

	var req dto.SchoolRequest
	if fe := helper.BindAndValidate(c, &req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	req.ApplyTo(m)
	if err := ctl.Repo.Save(ctx, m); err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entitySchool))
	}
	return helper.JsonOK(c, dto.ToSchoolResponse(m))
}

func (ctl *SchoolController) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entitySchool)
	}
	if err := ctl.Repo.SoftDelete(helper.ReqCtx(c), id); err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entitySchool))
	}
	return helper.JsonDeleted(c, entitySchool)
}
