package sse

import (
	"encoding/json"
	"sync"
)

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type MintedEvent struct {
	NFTID  string `json:"nft_id"`
	Owner  string `json:"owner"`
	Rarity string `json:"rarity"`
}

type ListedEvent struct {
	NFTID  string  `json:"nft_id"`
	Price  float64 `json:"price"`
	Seller string  `json:"seller"`
}

type SoldEvent struct {
	NFTID  string  `json:"nft_id"`
	Price  float64 `json:"price"`
	Seller string  `json:"seller"`
	Buyer  string  `json:"buyer"`
}

type CancelledEvent struct {
	NFTID  string `json:"nft_id"`
	Seller string `json:"seller"`
}

type Client struct {
	ID   string
	Send chan []byte
}

// Hub fans market activity out to every connected SSE client. There is
// a single global feed; clients with full buffers miss events rather
// than block the marketplace.
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 256),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(event)
			for _, client := range h.clients {
				select {
				case client.Send <- data:
				default:
					// Client buffer full, skip
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) BroadcastMinted(nftID, owner, rarity string) {
	h.broadcast <- Event{Type: "nft_minted", Data: MintedEvent{NFTID: nftID, Owner: owner, Rarity: rarity}}
}

func (h *Hub) BroadcastListed(nftID string, price float64, seller string) {
	h.broadcast <- Event{Type: "nft_listed", Data: ListedEvent{NFTID: nftID, Price: price, Seller: seller}}
}

func (h *Hub) BroadcastSold(nftID string, price float64, seller, buyer string) {
	h.broadcast <- Event{Type: "nft_sold", Data: SoldEvent{NFTID: nftID, Price: price, Seller: seller, Buyer: buyer}}
}

func (h *Hub) BroadcastCancelled(nftID, seller string) {
	h.broadcast <- Event{Type: "listing_cancelled", Data: CancelledEvent{NFTID: nftID, Seller: seller}}
}
