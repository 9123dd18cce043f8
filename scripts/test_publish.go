//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cityinfo-api/internal/domain"
)

// Публикует тестовое письмо в stream:mail:outgoing и ждёт, пока воркер его подтвердит.
func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	group := flag.String("group", "mail-workers", "consumer group of cmd/worker")
	flag.Parse()

	client := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	mail := domain.MailMessage{
		ID:        uuid.New(),
		From:      "noreply@mycompany.com",
		To:        "admin@mycompany.com",
		Subject:   "Point of interest deleted.",
		Body:      "Point of interest Cathedral with id 3 was deleted.",
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(mail)
	if err != nil {
		log.Fatalf("Failed to marshal mail: %v", err)
	}

	messageID, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamMailOutgoing,
		Values: map[string]interface{}{"data": string(data)},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish mail: %v", err)
	}

	fmt.Printf("Mail published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamMailOutgoing)
	fmt.Printf("   Message ID: %s\n", messageID)
	fmt.Printf("   Mail ID: %s\n", mail.ID)
	fmt.Printf("\nWaiting for %s to acknowledge it...\n", *group)

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout waiting for the worker")
			return
		case <-ticker.C:
			if delivered(ctx, client, *group, messageID) {
				fmt.Println("Mail delivered, check the worker log")
				return
			}
		}
	}
}

// delivered reports whether the group has read the message and has no pending entry for it.
func delivered(ctx context.Context, client *redis.Client, group, messageID string) bool {
	groups, err := client.XInfoGroups(ctx, domain.StreamMailOutgoing).Result()
	if err != nil {
		return false
	}

	for _, g := range groups {
		if g.Name != group || !notBefore(g.LastDeliveredID, messageID) {
			continue
		}
		pending, err := client.XPendingExt(ctx, &redis.XPendingExtArgs{
			Stream: domain.StreamMailOutgoing,
			Group:  group,
			Start:  messageID,
			End:    messageID,
			Count:  1,
		}).Result()
		return err == nil && len(pending) == 0
	}
	return false
}

// notBefore compares stream IDs of the form "<ms>-<seq>".
func notBefore(id, other string) bool {
	var idMs, idSeq, otherMs, otherSeq uint64
	if _, err := fmt.Sscanf(id, "%d-%d", &idMs, &idSeq); err != nil {
		return false
	}
	if _, err := fmt.Sscanf(other, "%d-%d", &otherMs, &otherSeq); err != nil {
		return false
	}
	return idMs > otherMs || (idMs == otherMs && idSeq >= otherSeq)
}
