package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/seller-orders/internal/entities"
	"github.com/SergeyBogomolovv/seller-orders/internal/lifecycle"
	"github.com/SergeyBogomolovv/seller-orders/internal/views"
	"github.com/SergeyBogomolovv/seller-orders/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	SellerOrders(ctx context.Context, sellerID string) ([]entities.OrderView, error)
	OrderView(ctx context.Context, sellerID, orderID string) (entities.OrderView, error)
	Transition(ctx context.Context, sellerID, orderID string, to entities.Status) (*entities.Order, error)
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
	r.Route("/sellers/{seller_id}/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Get("/summary", h.Summary)
		r.Get("/{order_id}", h.GetOrder)
		r.Patch("/{order_id}", h.UpdateStatus)
		r.Post("/{order_id}/{action}", h.ApplyAction)
	})
}

// Summary возвращает последние заказы продавца и число ожидающих.
// @Summary      Виджет последних заказов
// @Description  Пять самых новых заказов и счётчик заказов в статусе pending
// @Tags         orders
// @Param        seller_id  path      string  true  "Идентификатор продавца"
// @Success      200  {object}  SummaryResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /sellers/{seller_id}/orders/summary [get]
func (h *HTTPHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sellerID := chi.URLParam(r, "seller_id")

	if err := h.validate.Var(sellerID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	orders, err := h.svc.SellerOrders(ctx, sellerID)
	if err != nil {
		h.writeServiceError(ctx, w, err, slog.String("seller_id", sellerID))
		return
	}

	viewRenders.WithLabelValues("summary").Inc()
	utils.WriteJSON(w, SummaryToJSON(views.Summary(orders)), http.StatusOK)
}

// ListOrders возвращает страницу управления заказами.
// @Summary      Управление заказами
// @Description  Заказы продавца по вкладке и счётчики по статусам. all - все активные заказы
// @Tags         orders
// @Param        seller_id  path      string  true   "Идентификатор продавца"
// @Param        status     query     string  false  "Вкладка" Enums(pending, confirmed, shipped, all) default(all)
// @Success      200  {object}  ManagementResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /sellers/{seller_id}/orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sellerID := chi.URLParam(r, "seller_id")

	if err := h.validate.Var(sellerID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	filter := views.FilterAll
	if s := r.URL.Query().Get("status"); s != "" {
		f, err := views.ParseFilter(s)
		if err != nil {
			utils.WriteValidationError(w, err)
			return
		}
		filter = f
	}

	orders, err := h.svc.SellerOrders(ctx, sellerID)
	if err != nil {
		h.writeServiceError(ctx, w, err, slog.String("seller_id", sellerID))
		return
	}

	viewRenders.WithLabelValues("management").Inc()
	utils.WriteJSON(w, ManagementToJSON(views.Management(orders, filter)), http.StatusOK)
}

// GetOrder возвращает карточку заказа.
// @Summary      Карточка заказа
// @Description  Заказ, адрес доставки и доступные действия
// @Tags         orders
// @Param        seller_id  path      string  true  "Идентификатор продавца"
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  DetailResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /sellers/{seller_id}/orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sellerID := chi.URLParam(r, "seller_id")
	orderID := chi.URLParam(r, "order_id")

	order, err := h.svc.OrderView(ctx, sellerID, orderID)
	if err != nil {
		h.writeServiceError(ctx, w, err, slog.String("order_id", orderID))
		return
	}

	viewRenders.WithLabelValues("detail").Inc()
	utils.WriteJSON(w, DetailToJSON(views.Detail(order)), http.StatusOK)
}

// UpdateStatus переводит заказ в новый статус.
// @Summary      Сменить статус заказа
// @Description  Допустимы только переходы жизненного цикла. removed=true, если заказ удалён после доставки
// @Tags         orders
// @Accept       json
// @Param        seller_id  path      string             true  "Идентификатор продавца"
// @Param        order_id   path      string             true  "Идентификатор заказа"
// @Param        request    body      TransitionRequest  true  "Новый статус"
// @Success      200  {object}  TransitionResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  TransitionErrorResponse "Недопустимый переход или заказ изменён параллельно"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /sellers/{seller_id}/orders/{order_id} [patch]
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req TransitionRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	h.transition(w, r, entities.Status(req.Status))
}

// ApplyAction выполняет действие из карточки заказа.
// @Summary      Действие над заказом
// @Tags         orders
// @Param        seller_id  path      string  true  "Идентификатор продавца"
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Param        action     path      string  true  "Действие" Enums(confirm, cancel, ship, deliver)
// @Success      200  {object}  TransitionResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  TransitionErrorResponse "Недопустимый переход или заказ изменён параллельно"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /sellers/{seller_id}/orders/{order_id}/{action} [post]
func (h *HTTPHandler) ApplyAction(w http.ResponseWriter, r *http.Request) {
	action, err := lifecycle.ParseAction(chi.URLParam(r, "action"))
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	h.transition(w, r, action.Target())
}

func (h *HTTPHandler) transition(w http.ResponseWriter, r *http.Request, to entities.Status) {
	ctx := r.Context()
	sellerID := chi.URLParam(r, "seller_id")
	orderID := chi.URLParam(r, "order_id")

	updated, err := h.svc.Transition(ctx, sellerID, orderID, to)
	if err != nil {
		h.writeServiceError(ctx, w, err,
			slog.String("order_id", orderID),
			slog.String("to", string(to)),
		)
		return
	}

	utils.WriteJSON(w, TransitionToJSON(orderID, updated), http.StatusOK)
}

func (h *HTTPHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error, attrs ...any) {
	var te *lifecycle.TransitionError

	switch {
	case errors.Is(err, entities.ErrValidation):
		utils.WriteValidationError(w, err)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.As(err, &te):
		utils.WriteJSON(w, transitionErrorToJSON(te), http.StatusConflict)
	case errors.Is(err, entities.ErrConflict):
		utils.WriteError(w, "order was changed concurrently, reload and retry", http.StatusConflict)
	default:
		h.logger.ErrorContext(ctx, "request failed", append(attrs, slog.Any("error", err))...)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
