// Package checkout は注文確定までの状態遷移を持つセッション。
package checkout

import (
	"time"

	"app/internal/cart"
)

type State string

const (
	StateBrowsing        State = "BROWSING"
	StateReviewing       State = "REVIEWING"
	StateAwaitingConsent State = "AWAITING_CONSENT"
	StateFinalized       State = "FINALIZED"
)

// Session は1人の買い物セッション。カートと同意フラグを所有する。
// 遷移: BROWSING → REVIEWING → AWAITING_CONSENT → FINALIZED。
// 後退（キャンセル/戻る）はカート内容を変更しない。
type Session struct {
	ID        string
	Cart      *cart.Cart
	Consent   bool
	CreatedAt time.Time

	state State
}

func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		Cart:      cart.New(),
		CreatedAt: time.Now(),
		state:     StateBrowsing,
	}
}

func (s *Session) State() State {
	return s.state
}

// OpenReview はカート閲覧（BROWSING → REVIEWING）。空カートでは遷移しない。
func (s *Session) OpenReview() bool {
	if s.state != StateBrowsing {
		return s.state == StateReviewing
	}
	if s.Cart.IsEmpty() {
		return false
	}
	s.state = StateReviewing
	return true
}

// BeginCheckout はチェックアウト開始（REVIEWING → AWAITING_CONSENT）。
func (s *Session) BeginCheckout() bool {
	if s.state != StateReviewing || s.Cart.IsEmpty() {
		return false
	}
	s.state = StateAwaitingConsent
	return true
}

// SetConsent は同意フラグの更新。確定前ならいつでも変更できる。
func (s *Session) SetConsent(v bool) {
	s.Consent = v
}

// Back はチェックアウトから一歩戻る（AWAITING_CONSENT → REVIEWING）。
func (s *Session) Back() {
	if s.state == StateAwaitingConsent {
		s.state = StateReviewing
	}
}

// CloseAll は閲覧状態に戻す。カートは保持される。
func (s *Session) CloseAll() {
	if s.state != StateFinalized {
		s.state = StateBrowsing
	}
}

// CanFinalize は確定条件（同意あり・AWAITING_CONSENT・カート非空）。
func (s *Session) CanFinalize() bool {
	return s.state == StateAwaitingConsent && s.Consent && !s.Cart.IsEmpty()
}

// CompleteFinalize は確定処理の完了を記録する。
// メッセージの整形と送信ハンドオフは呼び出し側が先に済ませること。
// カートと同意フラグを初期状態に戻し、次の買い物（BROWSING）へ。
func (s *Session) CompleteFinalize() bool {
	if !s.CanFinalize() {
		return false
	}
	// FINALIZEDは瞬間的な状態。リセットして即BROWSINGに戻る。
	s.Cart.Clear()
	s.Consent = false
	s.state = StateBrowsing
	return true
}
