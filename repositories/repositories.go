package repositories

import (
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/replyflow/replyflow-backend/repositories/idp"
)

// Repositories aggregates every data-access dependency, constructed once at
// startup and handed to the usecases.
type Repositories struct {
	ExecutorGetter ExecutorGetter

	UserRepository       UserRepository
	AutomationRepository AutomationRepository
	ContactRepository    ContactRepository
	FlowRepository       FlowRepository
	SequenceRepository   SequenceRepository
	BroadcastRepository  BroadcastRepository
	GrowthToolRepository GrowthToolRepository
	PaymentRepository    PaymentRepository
	CouponRepository     CouponRepository
	SettingsRepository   SettingsRepository

	FirebaseClient      *idp.FirebaseClient
	InstagramRepository *InstagramRepository
}

func NewRepositories(
	pool *pgxpool.Pool,
	firebaseProjectId string,
	firebaseAuth *auth.Client,
	graphApiUrl string,
	httpClient *http.Client,
) Repositories {
	return Repositories{
		ExecutorGetter: NewExecutorGetter(pool),

		UserRepository:       &UserRepositoryPostgresql{},
		AutomationRepository: &AutomationRepositoryPostgresql{},
		ContactRepository:    &ContactRepositoryPostgresql{},
		FlowRepository:       &FlowRepositoryPostgresql{},
		SequenceRepository:   &SequenceRepositoryPostgresql{},
		BroadcastRepository:  &BroadcastRepositoryPostgresql{},
		GrowthToolRepository: &GrowthToolRepositoryPostgresql{},
		PaymentRepository:    &PaymentRepositoryPostgresql{},
		CouponRepository:     &CouponRepositoryPostgresql{},
		SettingsRepository:   &SettingsRepositoryPostgresql{},

		FirebaseClient:      idp.NewFirebaseClient(firebaseProjectId, firebaseAuth),
		InstagramRepository: NewInstagramRepository(graphApiUrl, httpClient),
	}
}
