package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shopcore/order-placement-service/internal/entities"
	"github.com/shopcore/order-placement-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, req entities.PlaceOrderRequest) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) (entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/orders", h.PlaceOrder)
	r.Get("/orders/{order_id}", h.GetOrderByID)
	r.Patch("/orders/{order_id}/status", h.UpdateStatus)
	r.Get("/users/{user_id}/orders", h.ListOrdersByUser)
}

// PlaceOrder оформляет заказ.
// @Summary      Оформить заказ
// @Description  Проверяет остатки, списывает их и создаёт заказ с позициями атомарно
// @Tags         orders
// @Accept       json
// @Param        request  body  PlaceOrderRequest  true  "Запрос оформления"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Пользователь или товар не найден"
// @Failure      409  {object}  InsufficientStockResponse "Недостаточно остатка"
// @Failure      422  {object}  utils.ErrorResponse "Опция не принадлежит товару"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req PlaceOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		placementTotal.WithLabelValues("invalid_request").Inc()
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		placementTotal.WithLabelValues("invalid_request").Inc()
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.PlaceOrder(ctx, PlaceOrderJSONToEntity(req))
	if err != nil {
		placementTotal.WithLabelValues(placementResult(err)).Inc()
		h.writePlacementError(ctx, w, err)
		return
	}

	placementTotal.WithLabelValues("success").Inc()
	placementDuration.Observe(time.Since(start).Seconds())
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrderByID возвращает заказ по ID.
// @Summary      Получить заказ
// @Tags         orders
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrderByID(ctx, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListOrdersByUser возвращает заказы пользователя.
// @Summary      Заказы пользователя
// @Tags         orders
// @Param        user_id   path      int  true  "Идентификатор пользователя"
// @Success      200  {array}   Order
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{user_id}/orders [get]
func (h *HTTPHandler) ListOrdersByUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil || userID <= 0 {
		utils.WriteError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	orders, err := h.svc.ListOrdersByUser(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err), slog.Int64("user_id", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// UpdateStatus меняет статус заказа.
// @Summary      Сменить статус заказа
// @Tags         orders
// @Accept       json
// @Param        order_id  path  string               true  "Идентификатор заказа"
// @Param        request   body  UpdateStatusRequest  true  "Новый статус"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход статуса"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id}/status [patch]
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.UpdateStatus(ctx, orderID, entities.OrderStatus(req.Status))

	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	case errors.Is(err, entities.ErrInvalidTransition):
		utils.WriteError(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to update order status", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	statusChanges.WithLabelValues(req.Status).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) writePlacementError(ctx context.Context, w http.ResponseWriter, err error) {
	var stockErr *entities.InsufficientStockError

	switch {
	case errors.Is(err, entities.ErrInvalidRequest):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrUserNotFound):
		utils.WriteError(w, "user not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOptionNotFound):
		utils.WriteError(w, "option not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOptionMismatch):
		utils.WriteError(w, "option does not belong to product", http.StatusUnprocessableEntity)
	case errors.As(err, &stockErr):
		utils.WriteJSON(w, InsufficientStockResponse{
			Message:   "insufficient stock",
			Product:   stockErr.Name,
			Requested: stockErr.Requested,
			Available: stockErr.Available,
		}, http.StatusConflict)
	default:
		// внутренние детали наружу не отдаём
		h.logger.ErrorContext(ctx, "failed to place order", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func placementResult(err error) string {
	var stockErr *entities.InsufficientStockError
	switch {
	case errors.Is(err, entities.ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrProductNotFound),
		errors.Is(err, entities.ErrOptionNotFound):
		return "not_found"
	case errors.Is(err, entities.ErrOptionMismatch):
		return "option_mismatch"
	case errors.As(err, &stockErr):
		return "insufficient_stock"
	default:
		return "internal_error"
	}
}
