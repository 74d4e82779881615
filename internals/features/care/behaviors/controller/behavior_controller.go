package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autismcare_backend/internals/features/care/behaviors/dto"
	"autismcare_backend/internals/features/care/behaviors/repository"
	"autismcare_backend/internals/features/refs"
	helper "autismcare_backend/internals/helpers"
	"autismcare_backend/internals/softdelete"
)

const entityBehavior = "Behavior"

type BehaviorController struct {
	Repo repository.BehaviorRepository
	Refs refs.Checker
	Log  *zap.Logger
}

func NewBehaviorController(db *gorm.DB, log *zap.Logger) *BehaviorController {
	return &BehaviorController{
		Repo: repository.NewBehaviorRepository(db),
		Refs: refs.New(db),
		Log:  log,
	}
}

func (ctl *BehaviorController) Create(c *fiber.Ctx) error {
	var req dto.BehaviorRequest
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
	return helper.JsonCreated(c, dto.ToBehaviorResponse(m))
}

func (ctl *BehaviorController) List(c *fiber.Ctx) error {
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
	return helper.JsonList(c, dto.ToBehaviorResponses(rows), total, pg.Paged)
}

func (ctl *BehaviorController) Get(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entityBehavior)
	}
	m, err := ctl.Repo.Find(helper.ReqCtx(c), id)
	if err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityBehavior))
	}
	return helper.JsonOK(c, dto.ToBehaviorResponse(m))
}

func (ctl *BehaviorController) Update(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entityBehavior)
	}
	ctx := helper.ReqCtx(c)
	m, err := ctl.Repo.Find(ctx, id)
	if err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityBehavior))
	}

	var req dto.BehaviorRequest
	if fe := helper.BindAndValidate(c, &req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	if err := ctl.checkRefs(ctx, &req); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	req.ApplyTo(m)
	if err := ctl.Repo.Save(ctx, m); err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityBehavior))
	}
	return helper.JsonOK(c, dto.ToBehaviorResponse(m))
}

func (ctl *BehaviorController) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entityBehavior)
	}
	if err := ctl.Repo.SoftDelete(helper.ReqCtx(c), id); err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityBehavior))
	}
	return helper.JsonDeleted(c, entityBehavior)
}

func (ctl *BehaviorController) checkRefs(ctx context.Context, req *dto.BehaviorRequest) error {
	if err := ctl.Refs.Profile(ctx, req.ProfileID); err != nil {
		return err
	}
	return ctl.Refs.EpisodeInProfile(ctx, req.EpisodeID, req.ProfileID)
}
