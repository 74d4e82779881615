package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autismcare_backend/internals/features/care/profiles/dto"
	"autismcare_backend/internals/features/care/profiles/repository"
	"autismcare_backend/internals/features/refs"
	helper "autismcare_backend/internals/helpers"
	"autismcare_backend/internals/softdelete"
)

const entityProfile = "Profile"

type ProfileController struct {
	Repo repository.ProfileRepository
	Refs refs.Checker
	Log  *zap.Logger
}

func NewProfileController(db *gorm.DB, log *zap.Logger) *ProfileController {
	return &ProfileController{
		Repo: repository.NewProfileRepository(db),
		Refs: refs.New(db),
		Log:  log,
	}
}

// POST /profile/create
func (ctl *ProfileController) Create(c *fiber.Ctx) error {
	var req dto.ProfileRequest
	if fe := helper.BindAndValidate(c, &req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	ctx := helper.ReqCtx(c)
	if err := ctl.checkOwner(ctx, req.UserID, 0); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	if err := ctl.Repo.Create(ctx, m); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	return helper.JsonCreated(c, dto.ToProfileResponse(m))
}

// GET /profile?user_id=
func (ctl *ProfileController) List(c *fiber.Ctx) error {
	filter, err := helper.QueryFilter(c, "user_id", "user_id")
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
	return helper.JsonList(c, dto.ToProfileResponses(rows), total, pg.Paged)
}

// GET /profile/:id
func (ctl *ProfileController) Get(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entityProfile)
	}
	m, err := ctl.Repo.Find(helper.ReqCtx(c), id)
	if err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityProfile))
	}
	return helper.JsonOK(c, dto.ToProfileResponse(m))
}

// PUT /profile/update/:id
func (ctl *ProfileController) Update(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entityProfile)
	}
	ctx := helper.ReqCtx(c)
	m, err := ctl.Repo.Find(ctx, id)
	if err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityProfile))
	}

	var req dto.ProfileRequest
	if fe := helper.BindAndValidate(c, &req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	if err := ctl.checkOwner(ctx, req.UserID, id); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	if err := req.ApplyTo(m); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	if err := ctl.Repo.Save(ctx, m); err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityProfile))
	}
	return helper.JsonOK(c, dto.ToProfileResponse(m))
}

// DELETE /profile/delete/:id
func (ctl *ProfileController) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entityProfile)
	}
	if err := ctl.Repo.SoftDelete(helper.ReqCtx(c), id); err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityProfile))
	}
	return helper.JsonDeleted(c, entityProfile)
}

// checkOwner: the user must be live and must not already own another live profile.
func (ctl *ProfileController) checkOwner(ctx context.Context, userID, excludeID uint) error {
	if err := ctl.Refs.User(ctx, userID); err != nil {
		return err
	}
	exists, err := ctl.Repo.HasLiveProfile(ctx, userID, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return helper.FieldError("user_id", "profile already exists for this user")
	}
	return nil
}
