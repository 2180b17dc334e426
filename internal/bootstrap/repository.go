package bootstrap

import (
	"context"

	calendarInfra "github.com/muhammadchandra19/exchange/services/bar-engine/internal/infrastructure/calendar"
	barInfra "github.com/muhammadchandra19/exchange/services/bar-engine/internal/infrastructure/questdb/bar"
	refdataInfra "github.com/muhammadchandra19/exchange/services/bar-engine/internal/infrastructure/questdb/refdata"
	tickInfra "github.com/muhammadchandra19/exchange/services/bar-engine/internal/infrastructure/questdb/tick"
	liveticksInfra "github.com/muhammadchandra19/exchange/services/bar-engine/internal/infrastructure/redis/liveticks"
)

// Repository holds the data access layer of the bar engine.
type Repository struct {
	Calendar      *calendarInfra.Calendar
	ReferenceData *refdataInfra.Repository
	Ticks         *tickInfra.Repository
	MinuteBars    *barInfra.Repository
	DayBars       *barInfra.Repository
	LiveTicks     *liveticksInfra.Repository
}

// registerRepository registers the repository.
func (b *Bootstrap) registerRepository(ctx context.Context) error {
	calendar, err := calendarInfra.NewFromQuestDB(ctx, b.QuestDB)
	if err != nil {
		return err
	}

	b.Repository.Calendar = calendar
	b.Repository.ReferenceData = refdataInfra.NewRepository(b.QuestDB)
	b.Repository.Ticks = tickInfra.NewRepository(b.QuestDB)
	b.Repository.MinuteBars = barInfra.NewMinuteRepository(b.QuestDB)
	b.Repository.DayBars = barInfra.NewDayRepository(b.QuestDB)
	b.Repository.LiveTicks = liveticksInfra.NewRepository(b.Redis)

	return nil
}
