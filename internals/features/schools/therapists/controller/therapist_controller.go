package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autismcare_backend/internals/features/refs"
	"autismcare_backend/internals/features/schools/therapists/dto"
	"autismcare_backend/internals/features/schools/therapists/repository"
	helper "autismcare_backend/internals/helpers"
	"autismcare_backend/internals/softdelete"
)

const entityTherapist = "Therapist"

type TherapistController struct {
	Repo repository.TherapistRepository
	Refs refs.Checker
	Log  *zap.Logger
}

func NewTherapistController(db *gorm.DB, log *zap.Logger) *TherapistController {
	return &TherapistController{
		Repo: repository.NewTherapistRepository(db),
		Refs: refs.New(db),
		Log:  log,
	}
}

func (ctl *TherapistController) Create(c *fiber.Ctx) error {
	var req dto.TherapistRequest
	if fe := helper.BindAndValidate(c, &req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	ctx := helper.ReqCtx(c)
	if err := ctl.Refs.RequireOptional(ctx, refs.TableSchools, "School", req.SchoolID); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}

	m := req.ToModel()
	if err := ctl.Repo.Create(ctx, m); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	return helper.JsonCreated(c, dto.ToTherapistResponse(m))
}

// List filters by ?school_id= when given.
func (ctl *TherapistController) List(c *fiber.Ctx) error {
	filter, err := helper.QueryFilter(c, "school_id", "school_id")
	if err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	pg := helper.ResolvePaging(c, 20, 200)

	rows, total, err := ctl.Repo.List(helper.ReqCtx(c), softdelete.ListOptions{
		Offset: pg.Offset,
		Limit:  pg.Limit,
		Filter: filter,
	})
	if err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	return helper.JsonList(c, dto.ToTherapistResponses(rows), total, pg.Paged)
}

func (ctl *TherapistController) Get(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entityTherapist)
	}
	m, err := ctl.Repo.Find(helper.ReqCtx(c), id)
	if err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityTherapist))
	}
	return helper.JsonOK(c, dto.ToTherapistResponse(m))
}

func (ctl *TherapistController) Update(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entityTherapist)
	}
	ctx := helper.ReqCtx(c)
	m, err := ctl.Repo.Find(ctx, id)
	if err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityTherapist))
	}

	var req dto.TherapistRequest
	if fe := helper.BindAndValidate(c, &req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	if err := ctl.Refs.RequireOptional(ctx, refs.TableSchools, "School", req.SchoolID); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	req.ApplyTo(m)
	if err := ctl.Repo.Save(ctx, m); err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityTherapist))
	}
	return helper.JsonOK(c, dto.ToTherapistResponse(m))
}

func (ctl *TherapistController) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entityTherapist)
	}
	if err := ctl.Repo.SoftDelete(helper.ReqCtx(c), id); err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityTherapist))
	}
	return helper.JsonDeleted(c, entityTherapist)
}
