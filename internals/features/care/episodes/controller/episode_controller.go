package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autismcare_backend/internals/features/care/episodes/dto"
	"autismcare_backend/internals/features/care/episodes/repository"
	"autismcare_backend/internals/features/refs"
	helper "autismcare_backend/internals/helpers"
	"autismcare_backend/internals/softdelete"
)

const entityEpisode = "Episode"

type EpisodeController struct {
	Repo repository.EpisodeRepository
	Refs refs.Checker
	Log  *zap.Logger
}

func NewEpisodeController(db *gorm.DB, log *zap.Logger) *EpisodeController {
	return &EpisodeController{
		Repo: repository.NewEpisodeRepository(db),
		Refs: refs.New(db),
		Log:  log,
	}
}

/* =======================================================
   CREATE
   ======================================================= */

func (ctl *EpisodeController) Create(c *fiber.Ctx) error {
	var req dto.EpisodeRequest
	if fe := helper.BindAndValidate(c, &req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	ctx := helper.ReqCtx(c)
	if err := ctl.Refs.Profile(ctx, req.ProfileID); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	if err := ctl.Repo.Create(ctx, m); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	return helper.JsonCreated(c, dto.ToEpisodeResponse(m))
}

/* =======================================================
   READ
   ======================================================= */

// List accepts ?profile_id= and ?page=&per_page=.
func (ctl *EpisodeController) List(c *fiber.Ctx) error {
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
	return helper.JsonList(c, dto.ToEpisodeResponses(rows), total, pg.Paged)
}

func (ctl *EpisodeController) Get(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entityEpisode)
	}
	m, err := ctl.Repo.Find(helper.ReqCtx(c), id)
	if err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityEpisode))
	}
	return helper.JsonOK(c, dto.ToEpisodeResponse(m))
}

/* =======================================================
   UPDATE (whole record) / DELETE (soft)
   ======================================================= */

func (ctl *EpisodeController) Update(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entityEpisode)
	}
	ctx := helper.ReqCtx(c)
	m, err := ctl.Repo.Find(ctx, id)
	if err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityEpisode))
	}

	var req dto.EpisodeRequest
	if fe := helper.BindAndValidate(c, &req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	if err := ctl.Refs.Profile(ctx, req.ProfileID); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	if err := req.ApplyTo(m); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	if err := ctl.Repo.Save(ctx, m); err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityEpisode))
	}
	return helper.JsonOK(c, dto.ToEpisodeResponse(m))
}

func (ctl *EpisodeController) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entityEpisode)
	}
	if err := ctl.Repo.SoftDelete(helper.ReqCtx(c), id); err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityEpisode))
	}
	return helper.JsonDeleted(c, entityEpisode)
}
