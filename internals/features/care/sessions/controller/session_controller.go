package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autismcare_backend/internals/features/care/sessions/dto"
	"autismcare_backend/internals/features/care/sessions/repository"
	"autismcare_backend/internals/features/refs"
	helper "autismcare_backend/internals/helpers"
	"autismcare_backend/internals/softdelete"
)

const entitySession = "Session"

type SessionController struct {
	Repo repository.SessionRepository
	Refs refs.Checker
	Log  *zap.Logger
}

func NewSessionController(db *gorm.DB, log *zap.Logger) *SessionController {
	return &SessionController{
		Repo: repository.NewSessionRepository(db),
		Refs: refs.New(db),
		Log:  log,
	}
}

func (ctl *SessionController) Create(c *fiber.Ctx) error {
	var req dto.SessionRequest
	if fe := helper.BindAndValidate(c, &req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	ctx := helper.ReqCtx(c)
	if err := ctl.checkRefs(ctx, &req); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	if err := ctl.Repo.Create(ctx, m); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	return helper.JsonCreated(c, dto.ToSessionResponse(m))
}

func (ctl *SessionController) List(c *fiber.Ctx) error {
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
	return helper.JsonList(c, dto.ToSessionResponses(rows), total, pg.Paged)
}

func (ctl *SessionController) Get(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entitySession)
	}
	m, err := ctl.Repo.Find(helper.ReqCtx(c), id)
	if err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entitySession))
	}
	return helper.JsonOK(c, dto.ToSessionResponse(m))
}

func (ctl *SessionController) Update(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entitySession)
	}
	ctx := helper.ReqCtx(c)
	m, err := ctl.Repo.Find(ctx, id)
	if err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entitySession))
	}

	var req dto.SessionRequest
	if fe := helper.BindAndValidate(c, &req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	if err := ctl.checkRefs(ctx, &req); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	if err := req.ApplyTo(m); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	if err := ctl.Repo.Save(ctx, m); err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entitySession))
	}
	return helper.JsonOK(c, dto.ToSessionResponse(m))
}

func (ctl *SessionController) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entitySession)
	}
	if err := ctl.Repo.SoftDelete(helper.ReqCtx(c), id); err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entitySession))
	}
	return helper.JsonDeleted(c, entitySession)
}

func (ctl *SessionController) checkRefs(ctx context.Context, req *dto.SessionRequest) error {
	if err := ctl.Refs.Profile(ctx, req.ProfileID); err != nil {
		return err
	}
	return ctl.Refs.RequireOptional(ctx, refs.TableTherapists, "Therapist", req.TherapistID)
}
