package nltime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/agenda-saas/internal/timezone"
)

// Parser heurístico para texto livre vindo do agente de voz / chatbot
// ("tomorrow 10 AM", "12/25 at 2:30 PM", "3"). A ordem de precedência das
// regras é fixa e cada regra só sobrescreve os campos que reconhece —
// mudar a ordem muda o horário agendado.

// ===============================
// Erros
// ===============================

type ParseError struct {
	Input  string
	Reason string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("cannot parse time expression %q: %s", e.Input, e.Reason)
}

// ===============================
// Padrões
// ===============================

var (
	reExplicitDate = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})\b`)
	reTwelveHour   = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	reTwentyFour   = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	reBareNumber   = regexp.MustCompile(`\b(\d{1,2})\b`)
	reAmQualifier  = regexp.MustCompile(`(?i)\bam\b`)
)

// Abaixo desse limite, número solto sem "am" vira horário da tarde
// ("3" → 15:00). Limite herdado do comportamento em produção: "6" → 18:00,
// "7" → 07:00. Não ajustar sem revisar agendamentos matinais.
const bareNumberPMThreshold = 7

// ===============================
// Parse
// ===============================

// Parse converte a expressão em um instante UTC. O "now" é explícito para
// as regras relativas ("tomorrow"/"today") serem determinísticas em teste;
// a borda HTTP passa o agora corrente.
func Parse(text string, tz string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(text) == "" {
		return time.Time{}, ParseError{Input: text, Reason: "empty expression"}
	}

	loc, err := timezone.Location(tz)
	if err != nil {
		return time.Time{}, err
	}

	lower := strings.ToLower(text)
	ref := now.In(loc)

	// 1️⃣ Dia relativo ("tomorrow" / "today"), na zona do chamador
	if strings.Contains(lower, "tomorrow") {
		ref = ref.AddDate(0, 0, 1)
	}

	year, month, day := ref.Year(), ref.Month(), ref.Day()

	// 2️⃣ Data explícita MM/DD ou MM-DD (ano fica o corrente)
	rest := lower
	if m := reExplicitDate.FindStringSubmatchIndex(lower); m != nil {
		mm, _ := strconv.Atoi(lower[m[2]:m[3]])
		dd, _ := strconv.Atoi(lower[m[4]:m[5]])
		if mm >= 1 && mm <= 12 && dd >= 1 && dd <= 31 {
			month = time.Month(mm)
			day = dd
			// remove a data para os dígitos dela não virarem horário
			rest = lower[:m[0]] + strings.Repeat(" ", m[1]-m[0]) + lower[m[1]:]
		}
	}

	// 3️⃣ Horário, em ordem de precedência
	hour, minute := extractTime(rest)

	ct := timezone.CivilTime{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
	}

	return timezone.LocalToUTC(ct, tz)
}

// extractTime aplica as três regras de horário. Sem token reconhecível,
// cai em 00:00 de propósito (entrada de voz é permissiva, não erro).
func extractTime(text string) (hour, minute int) {
	// (a) 12 horas: H[:MM] am/pm
	if m := reTwelveHour.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		if h >= 1 && h <= 12 {
			if m[2] != "" {
				minute, _ = strconv.Atoi(m[2])
			}
			meridiem := strings.ToLower(m[3])
			switch {
			case meridiem == "pm" && h != 12:
				h += 12
			case meridiem == "am" && h == 12:
				h = 0
			}
			return h, minute
		}
	}

	// (b) 24 horas: HH:MM
	if m := reTwentyFour.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		mn, _ := strconv.Atoi(m[2])
		if h <= 23 && mn <= 59 {
			return h, mn
		}
	}

	// (c) número solto de 1-2 dígitos, com heurística de horário comercial
	if m := reBareNumber.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		if h <= 23 {
			if h < bareNumberPMThreshold && !reAmQualifier.MatchString(text) {
				h += 12
			}
			return h, 0
		}
	}

	return 0, 0
}
