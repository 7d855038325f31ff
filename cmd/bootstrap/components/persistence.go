package components

import (
	"roombook/internal/infra/db"
	"roombook/internal/infra/readstore"
	"roombook/internal/infra/roomcache"
	"roombook/internal/infra/uow"
	"roombook/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		readstore.NewBookingReadStore,
		readstore.NewRoomReadStore,
		readstore.NewUserReadStore,
		readstore.NewNotificationReadStore,
		func(cfg config.Config) config.RedisConfig { return cfg.Redis },
		roomcache.New,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
