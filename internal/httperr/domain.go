package httperr

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-saas/internal/domain/scheduling"
	"github.com/BruksfildServices01/agenda-saas/internal/nltime"
	"github.com/BruksfildServices01/agenda-saas/internal/timezone"
)

// FromDomain traduz o erro tipado do core para a resposta HTTP. Detalhe
// suficiente para corrigir a entrada, nunca stack trace.
func FromDomain(c *gin.Context, err error) {
	var tzErr timezone.TimezoneError
	if errors.As(err, &tzErr) {
		BadRequest(c, "invalid_timezone", "Fuso horário inválido: "+tzErr.Zone)
		return
	}

	var parseErr nltime.ParseError
	if errors.As(err, &parseErr) {
		BadRequest(c, "unparseable_time", "Não foi possível interpretar o horário: "+parseErr.Reason)
		return
	}

	var valErr scheduling.ValidationError
	if errors.As(err, &valErr) {
		BadRequest(c, "validation_error", "Campo inválido: "+valErr.Field)
		return
	}

	var stErr scheduling.StateError
	if errors.As(err, &stErr) {
		Conflict(c, "invalid_transition", "Transição não permitida: "+string(stErr.From)+" -> "+string(stErr.To))
		return
	}

	var bizErr BusinessError
	if errors.As(err, &bizErr) {
		if strings.HasSuffix(bizErr.Code, "_not_found") {
			NotFound(c, bizErr.Code, "Recurso não encontrado.")
			return
		}
		BadRequest(c, bizErr.Code, "Operação inválida.")
		return
	}

	Internal(c, "internal_error", "Erro interno.")
}
