package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/msg"
	"todo-api/pkg/util/numberutils"
)

type TodoController struct {
	api           *echo.Group
	useCase       todo.UseCase
	auth          *middleware.Authenticator
	requireAPIKey bool
}

func NewTodoController(api *echo.Group, useCase todo.UseCase, auth *middleware.Authenticator, requireAPIKey bool) *TodoController {
	return &TodoController{api: api, useCase: useCase, auth: auth, requireAPIKey: requireAPIKey}
}

// InitTodoRoutes initializes todo routes. Static segments are matched before :id.
func (controller *TodoController) InitTodoRoutes() {
	var guards []echo.MiddlewareFunc
	if controller.requireAPIKey {
		guards = append(guards, controller.auth.RequireAPIKey())
	}
	todos := controller.api.Group("/todos", guards...)
	optionalAuth := controller.auth.OptionalAPIKey()

	todos.GET("", controller.FindAll)
	todos.POST("", controller.Create)
	todos.POST("/batch", controller.BatchCreate, optionalAuth)
	todos.GET("/stats", controller.Stats, optionalAuth)
	todos.DELETE("/completed", controller.ClearCompleted, optionalAuth)
	todos.PUT("/:id", controller.Update)
	todos.DELETE("/:id", controller.Delete)
	todos.PATCH("/:id/toggle", controller.Toggle, optionalAuth)
}

// FindAll godoc
// @Summary List todos
// @Description Retrieve every todo, newest first. The total is also sent in the X-Total-Count header.
// @Tags todos
// @Produce json
// @Success 200 {object} model.Envelope{data=[]entity.Todo} "Todos"
// @Header 200 {integer} X-Total-Count "Number of todos"
// @Failure 429 {object} model.Envelope "Too many requests"
// @Failure 500 {object} model.Envelope "Store failure"
// @Router /todos [get]
func (controller *TodoController) FindAll(c echo.Context) error {
	todos, err := controller.useCase.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	c.Response().Header().Set(middleware.HeaderTotalCount, strconv.Itoa(len(todos)))
	return c.JSON(http.StatusOK, model.NewSuccessEnvelope(todos, ""))
}

// Create godoc
// @Summary Create a todo
// @Description Create a todo from a text of 1 to 255 characters, surrounding blanks are trimmed
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body model.CreateTodoDTO true "Todo creation data"
// @Success 200 {object} model.Envelope{data=entity.Todo} "Created todo"
// @Failure 400 {object} model.Envelope "Invalid text"
// @Failure 500 {object} model.Envelope "Store failure"
// @Router /todos [post]
func (controller *TodoController) Create(c echo.Context) error {
	var dto model.CreateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return model.NewValidationError(msg.GetMessage("todo.error.invalid-body"))
	}

	created, err := controller.useCase.Create(c.Request().Context(), dto)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.NewSuccessEnvelope(created, msg.GetMessage("todo.success.created")))
}

// Update godoc
// @Summary Update a todo
// @Description Update the text and/or the completion flag of a todo, absent fields are kept
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Todo ID"
// @Param todo body model.UpdateTodoDTO true "Fields to update"
// @Success 200 {object} model.Envelope{data=entity.Todo} "Updated todo"
// @Failure 400 {object} model.Envelope "Invalid text or nothing to update"
// @Failure 404 {object} model.Envelope "Todo not found"
// @Failure 500 {object} model.Envelope "Store failure"
// @Router /todos/{id} [put]
func (controller *TodoController) Update(c echo.Context) error {
	id, err := todoID(c)
	if err != nil {
		return err
	}

	var dto model.UpdateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return model.NewValidationError(msg.GetMessage("todo.error.invalid-body"))
	}

	updated, err := controller.useCase.Update(c.Request().Context(), id, dto)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.NewSuccessEnvelope(updated, msg.GetMessage("todo.success.updated")))
}

// Delete godoc
// @Summary Delete a todo
// @Tags todos
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} model.Envelope "Todo deleted"
// @Failure 404 {object} model.Envelope "Todo not found"
// @Failure 500 {object} model.Envelope "Store failure"
// @Router /todos/{id} [delete]
func (controller *TodoController) Delete(c echo.Context) error {
	id, err := todoID(c)
	if err != nil {
		return err
	}

	if err := controller.useCase.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.NewSuccessEnvelope(nil, msg.GetMessage("todo.success.deleted")))
}

// Toggle godoc
// @Summary Toggle a todo
// @Description Flip the completion flag of a todo
// @Tags todos
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Todo ID"
// @Success 200 {object} model.Envelope{data=entity.Todo} "Toggled todo"
// @Failure 401 {object} model.Envelope "Invalid API key"
// @Failure 404 {object} model.Envelope "Todo not found"
// @Failure 500 {object} model.Envelope "Store failure"
// @Router /todos/{id}/toggle [patch]
func (controller *TodoController) Toggle(c echo.Context) error {
	id, err := todoID(c)
	if err != nil {
		return err
	}

	toggled, err := controller.useCase.Toggle(c.Request().Context(), id)
	if err != nil {
		return err
	}

	message := msg.GetMessage("todo.success.reopened")
	if toggled.Completed {
		message = msg.GetMessage("todo.success.completed")
	}
	return c.JSON(http.StatusOK, model.NewSuccessEnvelope(toggled, message))
}

// BatchCreate godoc
// @Summary Create todos in batch
// @Description Create up to 100 todos in one transaction. One invalid item rolls back the whole batch.
// @Tags todos
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param todos body model.BatchCreateTodoDTO true "Todos to create"
// @Success 200 {object} model.Envelope{data=[]entity.Todo} "Created todos in request order"
// @Failure 400 {object} model.Envelope "Missing, empty or oversized batch"
// @Failure 401 {object} model.Envelope "Invalid API key"
// @Failure 500 {object} model.Envelope "Batch rolled back"
// @Router /todos/batch [post]
func (controller *TodoController) BatchCreate(c echo.Context) error {
	var dto model.BatchCreateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return model.NewValidationError(msg.GetMessage("todo.error.invalid-batch"))
	}

	created, err := controller.useCase.BatchCreate(c.Request().Context(), dto)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.NewSuccessEnvelope(created, msg.GetMessage("todo.success.batch-created", len(created))))
}

// Stats godoc
// @Summary Todo statistics
// @Tags todos
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.Envelope{data=model.TodoStats} "Statistics"
// @Failure 401 {object} model.Envelope "Invalid API key"
// @Failure 500 {object} model.Envelope "Store failure"
// @Router /todos/stats [get]
func (controller *TodoController) Stats(c echo.Context) error {
	stats, err := controller.useCase.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.NewSuccessEnvelope(stats, ""))
}

// ClearCompleted godoc
// @Summary Delete completed todos
// @Tags todos
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.Envelope{data=model.ClearCompletedResult} "Number of deleted todos"
// @Failure 401 {object} model.Envelope "Invalid API key"
// @Failure 500 {object} model.Envelope "Store failure"
// @Router /todos/completed [delete]
func (controller *TodoController) ClearCompleted(c echo.Context) error {
	result, err := controller.useCase.ClearCompleted(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.NewSuccessEnvelope(result, msg.GetMessage("todo.success.cleared", result.DeletedCount)))
}

// todoID reads the :id path parameter. Ids that cannot exist are reported as not found.
func todoID(c echo.Context) (int64, error) {
	id, ok := numberutils.ToPositiveInt64(c.Param("id"))
	if !ok {
		return 0, model.NewNotFoundError(msg.GetMessage("todo.error.not-found"))
	}
	return id, nil
}
