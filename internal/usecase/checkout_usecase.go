package usecase

import (
	"context"
	"log/slog"
	"net/http"

	"app/internal/checkout"
	"app/internal/domain/model"
	"app/internal/order"
	repo "app/internal/repository"
)

// CheckoutUsecase は確定フロー。
// 遷移の正当性はcheckout.Session側、同意ゲートと送信ハンドオフはここ。
type CheckoutUsecase struct {
	shop     model.Shop
	sessions repo.SessionRepository
}

// DI
func NewCheckoutUsecase(shop model.Shop, sessions repo.SessionRepository) *CheckoutUsecase {
	return &CheckoutUsecase{
		shop:     shop,
		sessions: sessions,
	}
}

type CheckoutPreviewOutput struct {
	State   string `json:"state"`
	Consent bool   `json:"consent"`
	Message string `json:"message"`
}

// POST /checkout/consent
type ConsentInput struct {
	Consent bool
}

type OrderOutput struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
	Total       string `json:"total"`
}

// Begin はチェックアウト開始。空カートは400。
// 戻り値のmessageは送信前プレビュー（同意が無くても整形はする）。
func (u *CheckoutUsecase) Begin(ctx context.Context, sessionID string) (CheckoutPreviewOutput, error) {
	sess, err := u.session(ctx, sessionID)
	if err != nil {
		return CheckoutPreviewOutput{}, err
	}

	// 既に開始済みならそのまま（冪等）
	if sess.State() == checkout.StateAwaitingConsent {
		return u.preview(sess), nil
	}

	if !sess.OpenReview() || !sess.BeginCheckout() {
		return CheckoutPreviewOutput{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	return u.preview(sess), nil
}

// SetConsent は同意フラグの更新。
func (u *CheckoutUsecase) SetConsent(ctx context.Context, sessionID string, in ConsentInput) (CheckoutPreviewOutput, error) {
	sess, err := u.session(ctx, sessionID)
	if err != nil {
		return CheckoutPreviewOutput{}, err
	}

	sess.SetConsent(in.Consent)
	return u.preview(sess), nil
}

// Cancel はチェックアウトから離脱。カート内容は変更しない。
func (u *CheckoutUsecase) Cancel(ctx context.Context, sessionID string) (CheckoutPreviewOutput, error) {
	sess, err := u.session(ctx, sessionID)
	if err != nil {
		return CheckoutPreviewOutput{}, err
	}

	sess.Back()
	sess.CloseAll()
	return u.preview(sess), nil
}

// Confirm は注文確定。整形→送信URL生成→リセットの順。
// 同意なしは409で、カートにも状態にも影響を与えない。
func (u *CheckoutUsecase) Confirm(ctx context.Context, sessionID string) (OrderOutput, error) {
	sess, err := u.session(ctx, sessionID)
	if err != nil {
		return OrderOutput{}, err
	}

	if sess.Cart.IsEmpty() {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}
	if sess.State() != checkout.StateAwaitingConsent {
		return OrderOutput{}, NewHTTPError(http.StatusConflict, "checkout not started")
	}
	if !sess.Consent {
		return OrderOutput{}, NewHTTPError(http.StatusConflict, "consent required")
	}

	// リセット前に整形する（確定は1回きり）
	msg := order.FormatSummary(sess.Cart, u.shop)
	link := order.WhatsAppURL(u.shop, msg)
	total := sess.Cart.GrandTotal(u.shop.ConvenienceFee).StringFixed(2)

	if !sess.CompleteFinalize() {
		return OrderOutput{}, NewHTTPError(http.StatusConflict, "cannot finalize")
	}

	slog.Info("order finalized",
		"session_id", sess.ID,
		"shop", u.shop.Username,
		"total", total)

	return OrderOutput{
		Message:     msg,
		WhatsAppURL: link,
		Total:       total,
	}, nil
}

func (u *CheckoutUsecase) session(ctx context.Context, sessionID string) (*checkout.Session, error) {
	if sessionID == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "no session")
	}
	sess, err := u.sessions.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "session error")
	}
	return sess, nil
}

func (u *CheckoutUsecase) preview(sess *checkout.Session) CheckoutPreviewOutput {
	return CheckoutPreviewOutput{
		State:   string(sess.State()),
		Consent: sess.Consent,
		Message: order.FormatSummary(sess.Cart, u.shop),
	}
}
