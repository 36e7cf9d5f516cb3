package handler

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sync"

	"etickets/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

const orderEventsChannel = "orders"

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		redisClient = redis.NewClient(&redis.Options{Addr: addr})
	})
	return redisClient
}

// PublishOrderEvent pushes a completed order onto the redis channel backing
// the admin feed. Publish failures only get logged, checkout already
// succeeded at this point.
func PublishOrderEvent(event model.OrderEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("marshal order event %s: %v", event.PublicCode, err)
		return
	}
	if err := getRedisClient().Publish(context.Background(), orderEventsChannel, payload).Err(); err != nil {
		log.Printf("publish order event %s: %v", event.PublicCode, err)
	}
}

// feedConn is the write side of one admin dashboard connection.
type feedConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

var (
	feedClients = make(map[feedConn]bool)
	feedMu      sync.Mutex
	feedOnce    sync.Once
)

func registerFeedConn(conn feedConn) {
	feedMu.Lock()
	feedClients[conn] = true
	feedMu.Unlock()
}

func unregisterFeedConn(conn feedConn) {
	feedMu.Lock()
	delete(feedClients, conn)
	feedMu.Unlock()
}

// broadcastToFeed fans the payload out to every registered connection.
// Clients whose write fails are closed and dropped from the registry.
func broadcastToFeed(payload []byte) {
	feedMu.Lock()
	for conn := range feedClients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(feedClients, conn)
		}
	}
	feedMu.Unlock()
}

// startOrderFeedBroadcast holds the single redis subscription shared by all
// feed connections.
func startOrderFeedBroadcast() {
	go func() {
		pubsub := getRedisClient().Subscribe(context.Background(), orderEventsChannel)
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			broadcastToFeed([]byte(msg.Payload))
		}
	}()
}

// OrdersFeed streams order events to admin dashboards.
func OrdersFeed(c *websocket.Conn) {
	feedOnce.Do(startOrderFeedBroadcast)

	registerFeedConn(c)
	defer func() {
		unregisterFeedConn(c)
		c.Close()
	}()

	// Block until the client goes away; events arrive via the broadcaster.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
