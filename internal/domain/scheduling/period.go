package scheduling

import "time"

// ===============================
// Período
// ===============================

// Period é meio-aberto: [Start, End).
type Period struct {
	Start time.Time
	End   time.Time
}

// Day devolve o período do dia-calendário local que contém o instante.
func Day(t time.Time, loc *time.Location) Period {
	lt := t.In(loc)
	start := time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
	return Period{Start: start, End: start.AddDate(0, 0, 1)}
}

// Week devolve os sete dias a partir do dia-calendário local do instante.
// Não alinha em segunda-feira: o chamador escolhe a âncora.
func Week(t time.Time, loc *time.Location) Period {
	day := Day(t, loc)
	return Period{Start: day.Start, End: day.Start.AddDate(0, 0, 7)}
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}
