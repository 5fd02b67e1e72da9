package timezone

import (
	"fmt"
	"log"
	"time"
)

// Fallback seguro: zona inválida nunca corrompe dados, cai para UTC.
const DefaultTimezone = "UTC"

// ===============================
// Erros
// ===============================

type TimezoneError struct {
	Zone string
}

func (e TimezoneError) Error() string {
	return fmt.Sprintf("invalid timezone %q", e.Zone)
}

// ===============================
// CivilTime
// ===============================

// CivilTime é um horário de parede (relógio local) sem zona embutida.
// Nunca é persistido — existe só como intermediário de conversão/exibição.
type CivilTime struct {
	Year   int        `json:"year"`
	Month  time.Month `json:"month"`
	Day    int        `json:"day"`
	Hour   int        `json:"hour"`
	Minute int        `json:"minute"`
}

// ===============================
// Zona
// ===============================

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) (*time.Location, error) {
	if tz == "" {
		return nil, TimezoneError{Zone: tz}
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, TimezoneError{Zone: tz}
	}
	return loc, nil
}

// LocationOrUTC resolve a zona com fallback para UTC (uso só em exibição).
func LocationOrUTC(tz string) *time.Location {
	if loc, err := Location(tz); err == nil {
		return loc
	}

	log.Printf("timezone: zona %q inválida, usando %s", tz, DefaultTimezone)
	return time.UTC
}

func Now() time.Time {
	return time.Now().UTC()
}

func NowIn(tz string) (time.Time, error) {
	loc, err := Location(tz)
	if err != nil {
		return time.Time{}, err
	}
	return time.Now().In(loc), nil
}

// ===============================
// Conversão local <-> UTC
// ===============================

// LocalToUTC interpreta o horário de parede na zona dada e devolve o
// instante absoluto em UTC.
//
// Política de DST (herdada do tzdb via time.Date): horário dentro do "gap"
// de primavera é normalizado para frente; horário ambíguo do fim do horário
// de verão resolve para o primeiro offset. Mesma entrada → mesmo instante.
func LocalToUTC(ct CivilTime, tz string) (time.Time, error) {
	loc, err := Location(tz)
	if err != nil {
		return time.Time{}, err
	}

	local := time.Date(
		ct.Year, ct.Month, ct.Day,
		ct.Hour, ct.Minute, 0, 0,
		loc,
	)

	return local.UTC(), nil
}

// UTCToLocal é a inversa de LocalToUTC, para exibição.
func UTCToLocal(t time.Time, tz string) (CivilTime, error) {
	loc, err := Location(tz)
	if err != nil {
		return CivilTime{}, err
	}

	local := t.In(loc)
	return CivilTime{
		Year:   local.Year(),
		Month:  local.Month(),
		Day:    local.Day(),
		Hour:   local.Hour(),
		Minute: local.Minute(),
	}, nil
}

// ===============================
// Detecção / exibição (fail-soft)
// ===============================

// Detect lê a zona do ambiente local. Nunca falha: sem zona utilizável,
// devolve UTC com warning no log.
func Detect() string {
	name := time.Now().Location().String()
	if name == "" || name == "Local" {
		name, _ = time.Now().Zone()
	}

	if !IsValid(name) {
		log.Printf("timezone: não foi possível detectar a zona local, usando %s", DefaultTimezone)
		return DefaultTimezone
	}
	return name
}

// Abbreviation devolve o rótulo curto da zona no instante dado ("IST",
// "PST"...). Falha devolve string vazia, nunca erro.
func Abbreviation(tz string, t time.Time) string {
	loc, err := Location(tz)
	if err != nil {
		return ""
	}

	abbr, _ := t.In(loc).Zone()
	return abbr
}

// ===============================
// Comparação
// ===============================

// IsInPast compara o instante com "agora" visto na mesma zona.
func IsInPast(t time.Time, tz string) (bool, error) {
	loc, err := Location(tz)
	if err != nil {
		return false, err
	}

	return t.In(loc).Before(time.Now().In(loc)), nil
}
