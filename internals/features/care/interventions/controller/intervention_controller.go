package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autismcare_backend/internals/features/care/interventions/dto"
	"autismcare_backend/internals/features/care/interventions/model"
	"autismcare_backend/internals/features/care/interventions/repository"
	"autismcare_backend/internals/features/refs"
	helper "autismcare_backend/internals/helpers"
	"autismcare_backend/internals/softdelete"
)

const entityIntervention = "Intervention"

type InterventionController struct {
	Repo repository.InterventionRepository
	Refs refs.Checker
	Log  *zap.Logger
}

func NewInterventionController(db *gorm.DB, log *zap.Logger) *InterventionController {
	return &InterventionController{
		Repo: repository.NewInterventionRepository(db),
		Refs: refs.New(db),
		Log:  log,
	}
}

// POST /intervention/create
func (ctl *InterventionController) Create(c *fiber.Ctx) error {
	var req dto.InterventionRequest
	if fe := helper.BindAndValidate(c, &req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	ctx := helper.ReqCtx(c)
	profileID, err := ctl.resolveProfile(ctx, &req)
	if err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}

	m := &model.InterventionModel{}
	req.ApplyTo(m, profileID)
	if err := ctl.Repo.Create(ctx, m); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	return helper.JsonCreated(c, dto.ToInterventionResponse(m))
}

// GET /intervention?profile_id=&behavior_id=
func (ctl *InterventionController) List(c *fiber.Ctx) error {
	byProfile, err := helper.QueryFilter(c, "profile_id", "profile_id")
	if err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	byBehavior, err := helper.QueryFilter(c, "behavior_id", "behavior_id")
	if err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	pg := helper.ResolvePaging(c, 20, 200)

	rows, total, err := ctl.Repo.List(helper.ReqCtx(c), softdelete.ListOptions{
		Offset: pg.Offset,
		Limit:  pg.Limit,
		Filter: func(db *gorm.DB) *gorm.DB {
			if byProfile != nil {
				db = byProfile(db)
			}
			if byBehavior != nil {
				db = byBehavior(db)
			}
			return db
		},
	})
	if err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	return helper.JsonList(c, dto.ToInterventionResponses(rows), total, pg.Paged)
}

// GET /intervention/:id
func (ctl *InterventionController) Get(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entityIntervention)
	}
	m, err := ctl.Repo.Find(helper.ReqCtx(c), id)
	if err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityIntervention))
	}
	return helper.JsonOK(c, dto.ToInterventionResponse(m))
}

// PUT /intervention/update/:id
func (ctl *InterventionController) Update(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entityIntervention)
	}
	ctx := helper.ReqCtx(c)
	m, err := ctl.Repo.Find(ctx, id)
	if err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityIntervention))
	}

	var req dto.InterventionRequest
	if fe := helper.BindAndValidate(c, &req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	profileID, err := ctl.resolveProfile(ctx, &req)
	if err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	req.ApplyTo(m, profileID)
	if err := ctl.Repo.Save(ctx, m); err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityIntervention))
	}
	return helper.JsonOK(c, dto.ToInterventionResponse(m))
}

// DELETE /intervention/delete/:id
func (ctl *InterventionController) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entityIntervention)
	}
	if err := ctl.Repo.SoftDelete(helper.ReqCtx(c), id); err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityIntervention))
	}
	return helper.JsonDeleted(c, entityIntervention)
}

// resolveProfile loads the behavior's profile, checks it against an explicit
// profile_id and validates the optional episode against it.
func (ctl *InterventionController) resolveProfile(ctx context.Context, req *dto.InterventionRequest) (uint, error) {
	profileID, err := ctl.Refs.ProfileOf(ctx, refs.TableBehaviors, "Behavior", req.BehaviorID)
	if err != nil {
		return 0, err
	}
	if req.ProfileID != nil && *req.ProfileID != profileID {
		if err := ctl.Refs.Profile(ctx, *req.ProfileID); err != nil {
			return 0, err
		}
		return 0, helper.FieldError("profile_id", "Profile does not match the behavior's profile.")
	}
	if err := ctl.Refs.Profile(ctx, profileID); err != nil {
		return 0, err
	}
	if err := ctl.Refs.EpisodeInProfile(ctx, req.EpisodeID, profileID); err != nil {
		return 0, err
	}
	return profileID, nil
}
