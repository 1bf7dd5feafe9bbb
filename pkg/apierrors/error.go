package apierrors

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"taskstats/pkg/translator"
)

// JsonErr is the error envelope returned by every endpoint.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

type Err struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError builds a JsonErr whose message is msgKey translated into lang.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{ErrDetails: Err{Code: code, Message: GetTransErrorMsg(msgKey, lang)}}
}

// WithRequestID tags the error so clients can quote it when reporting a failure.
func (e JsonErr) WithRequestID(id string) JsonErr {
	e.ErrDetails.RequestID = id
	return e
}

// GetTransErrorMsg falls back to msgKey when no translation exists.
func GetTransErrorMsg(msgKey string, lang string) string {
	if translator.Translator == nil {
		return msgKey
	}
	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: msgKey})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
