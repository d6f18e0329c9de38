package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"mentepro/models"
	"mentepro/utils"
)

// RedisSnapshotStore keeps the appointment collection as a single JSON blob
// under a fixed namespace key, mirroring the browser-era localStorage
// fallback.
type RedisSnapshotStore struct {
	client *redis.Client
}

// NewRedisSnapshotStore creates a snapshot store on the given Redis client.
func NewRedisSnapshotStore(client *redis.Client) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client}
}

// Load reads the snapshot blob. A missing key yields an empty collection.
func (st *RedisSnapshotStore) Load(ctx context.Context) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	raw, err := st.client.Get(ctx, utils.SnapshotNamespace).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment snapshot: %w", err)
	}

	var appts []models.Appointment
	if err := json.Unmarshal([]byte(raw), &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointment snapshot: %w", err)
	}
	return appts, nil
}

// Save overwrites the snapshot blob with the given collection.
func (st *RedisSnapshotStore) Save(ctx context.Context, appts []models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	b, err := json.Marshal(appts)
	if err != nil {
		return fmt.Errorf("failed to encode appointment snapshot: %w", err)
	}
	if err := st.client.Set(ctx, utils.SnapshotNamespace, b, 0).Err(); err != nil {
		return fmt.Errorf("failed to store appointment snapshot: %w", err)
	}
	return nil
}
