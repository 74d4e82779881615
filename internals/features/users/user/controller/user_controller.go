package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autismcare_backend/internals/features/users/user/dto"
	"autismcare_backend/internals/features/users/user/repository"
	helper "autismcare_backend/internals/helpers"
	helperAuth "autismcare_backend/internals/helpers/auth"
	"autismcare_backend/internals/softdelete"
)

const entityUser = "User"

type UserController struct {
	Repo repository.UserRepository
	Log  *zap.Logger
}

func NewUserController(db *gorm.DB, log *zap.Logger) *UserController {
	return &UserController{Repo: repository.NewUserRepository(db), Log: log}
}

// ===================== CREATE =====================
// POST /user/create
func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req dto.UserRequest
	if fe := helper.BindAndValidate(c, &req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	req.Normalize()

	ctx := helper.ReqCtx(c)
	if err := ctl.checkUnique(ctx, &req, 0); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	if err := ctl.Repo.Create(ctx, m); err != nil {
		return helper.HandleError(c, ctl.Log, uniqueAsFieldError(err))
	}
	return helper.JsonCreated(c, dto.ToUserResponse(m))
}

// ===================== LIST =====================
// GET /user
func (ctl *UserController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)
	rows, total, err := ctl.Repo.List(helper.ReqCtx(c), softdelete.ListOptions{
		Offset: pg.Offset,
		Limit:  pg.Limit,
	})
	if err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	return helper.JsonList(c, dto.ToUserResponses(rows), total, pg.Paged)
}

// ===================== DETAIL =====================
// GET /user/:id
func (ctl *UserController) Get(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entityUser)
	}
	m, err := ctl.Repo.Find(helper.ReqCtx(c), id)
	if err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityUser))
	}
	return helper.JsonOK(c, dto.ToUserResponse(m))
}

// GET /user/me
func (ctl *UserController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	m, err := ctl.Repo.Find(helper.ReqCtx(c), userID)
	if err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityUser))
	}
	return helper.JsonOK(c, dto.ToUserResponse(m))
}

// ===================== UPDATE =====================
// PUT /user/update/:id (whole record)
func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entityUser)
	}
	ctx := helper.ReqCtx(c)
	m, err := ctl.Repo.Find(ctx, id)
	if err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityUser))
	}

	var req dto.UserRequest
	if fe := helper.BindAndValidate(c, &req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	req.Normalize()
	if err := ctl.checkUnique(ctx, &req, id); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}

	if err := req.ApplyTo(m); err != nil {
		return helper.HandleError(c, ctl.Log, err)
	}
	if err := ctl.Repo.Save(ctx, m); err != nil {
		return helper.HandleError(c, ctl.Log, uniqueAsFieldError(helper.EntityError(err, entityUser)))
	}
	return helper.JsonOK(c, dto.ToUserResponse(m))
}

// ===================== DELETE =====================
// DELETE /user/delete/:id (soft)
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.JsonNotFound(c, entityUser)
	}
	if err := ctl.Repo.SoftDelete(helper.ReqCtx(c), id); err != nil {
		return helper.HandleError(c, ctl.Log, helper.EntityError(err, entityUser))
	}
	return helper.JsonDeleted(c, entityUser)
}

/* ===================== helpers ===================== */

func (ctl *UserController) checkUnique(ctx context.Context, req *dto.UserRequest, excludeID uint) error {
	fe := helper.FieldErrors{}
	taken, err := ctl.Repo.UsernameTaken(ctx, req.Username, excludeID)
	if err != nil {
		return err
	}
	if taken {
		fe.Add("username", "A user with that username already exists.")
	}
	taken, err = ctl.Repo.EmailTaken(ctx, req.Email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		fe.Add("email", "A user with that email already exists.")
	}
	if !fe.Empty() {
		return fe
	}
	return nil
}

// uniqueAsFieldError covers the race between checkUnique and the write.
func uniqueAsFieldError(err error) error {
	if helper.IsUniqueViolation(err) {
		return helper.FieldError(helper.NonFieldErrors, "A user with that username or email already exists.")
	}
	return err
}
