package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autismcare_backend/internals/features/care/triggers/dto"
	"autismcare_backend/internals/features/care/triggers/repository"
	"autismcare_backend/internals/features/refs"
	helper "autismcare_backend/internals/helpers"
	"autismcare_backend/internals/softdelete"
)

const entityTrigger = "Trigger"

type TriggerController struct {
	Repo repository.TriggerRepository
	Refs refs.Checker
	Log  *zap.Logger
}

func NewTriggerController(db *gorm.DB, log *zap.Logger) *TriggerController {
	return &TriggerController{
		Repo: repository.NewTriggerRepository(db),
		Refs: refs.New(db),
		Log:  log,
	}
}

// POST /trigger/create
func (ctl *TriggerController) Create(c *fiber.Ctx) error {
	var req dto.TriggerRequest
	if fe := helper.BindAndValidate(c, &req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	ctx := helper.ReqCtx(c)
	if err := ctl.checkRefs(ctx, &req); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}

	m := req.ToModel()
	if err := ctl.Repo.Create(ctx, m); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	return helper.JsonCreated(c, dto.ToTriggerResponse(m))
}

// GET /trigger?profile_id=
func (ctl *TriggerController) List(c *fiber.Ctx) error {
	filter, err := helper.QueryFilter(c, "profile_id", "profile_id")
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
	return helper.JsonList(c, dto.ToTriggerResponses(rows), total, pg.Paged)
}

// GET /trigger/:id
func (ctl *TriggerController) Get(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entityTrigger)
	}
	m, err := ctl.Repo.Find(helper.ReqCtx(c), id)
	if err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityTrigger))
	}
	return helper.JsonOK(c, dto.ToTriggerResponse(m))
}

// PUT /trigger/update/:id
func (ctl *TriggerController) Update(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entityTrigger)
	}
	ctx := helper.ReqCtx(c)
	m, err := ctl.Repo.Find(ctx, id)
	if err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityTrigger))
	}

	var req dto.TriggerRequest
	if fe := helper.BindAndValidate(c, &req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	if err := ctl.checkRefs(ctx, &req); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	req.ApplyTo(m)
	if err := ctl.Repo.Save(ctx, m); err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityTrigger))
	}
	return helper.JsonOK(c, dto.ToTriggerResponse(m))
}

// DELETE /trigger/delete/:id
func (ctl *TriggerController) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entityTrigger)
	}
	if err := ctl.Repo.SoftDelete(helper.ReqCtx(c), id); err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityTrigger))
	}
	return helper.JsonDeleted(c, entityTrigger)
}

func (ctl *TriggerController) checkRefs(ctx context.Context, req *dto.TriggerRequest) error {
	if err := ctl.Refs.Profile(ctx, req.ProfileID); err != nil {
		return err
	}
	return ctl.Refs.EpisodeInProfile(ctx, req.EpisodeID, req.ProfileID)
}
