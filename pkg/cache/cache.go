package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const defaultJanitorInterval = 2 * time.Minute

type entry struct {
	key        string
	value      []byte
	expiration time.Time
}

// LRUCache - потокобезопасный LRU кэш со временем жизни записей
type LRUCache struct {
	capacity int
	ttl      time.Duration
	interval time.Duration

	mu    sync.Mutex
	ll    *list.List
	cache map[string]*list.Element
}

func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		interval: defaultJanitorInterval,
		ll:       list.New(),
		cache:    make(map[string]*list.Element),
	}
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, ok := c.lookup(key)
	if !ok {
		return nil, false
	}
	c.ll.MoveToFront(ele)
	return ele.Value.(*entry).value, true
}

// SetFunc передаёт fn текущее значение ключа и записывает результат, если fn вернула true.
// fn выполняется под блокировкой кэша и не должна обращаться к нему.
func (c *LRUCache) SetFunc(key string, fn func(current []byte, ok bool) ([]byte, bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var current []byte
	ele, ok := c.lookup(key)
	if ok {
		current = ele.Value.(*entry).value
	}

	value, store := fn(current, ok)
	if !store {
		return
	}
	c.set(key, value)
}

// Size - число записей, включая просроченные, которые ещё не убрал janitor
func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Start запускает фоновую очистку просроченных записей до отмены ctx
func (c *LRUCache) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

// lookup удаляет просроченную запись. Вызывать под блокировкой.
func (c *LRUCache) lookup(key string) (*list.Element, bool) {
	ele, ok := c.cache[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(ele.Value.(*entry).expiration) {
		c.removeElement(ele)
		return nil, false
	}
	return ele, true
}

func (c *LRUCache) set(key string, value []byte) {
	if ele, ok := c.cache[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry)
		ent.value = value
		ent.expiration = time.Now().Add(c.ttl)
		return
	}

	ent := &entry{key: key, value: value, expiration: time.Now().Add(c.ttl)}
	c.cache[key] = c.ll.PushFront(ent)

	if c.ll.Len() > c.capacity {
		c.removeOldest()
	}
}

func (c *LRUCache) removeOldest() {
	ele := c.ll.Back()
	if ele != nil {
		c.removeElement(ele)
	}
}

func (c *LRUCache) removeElement(e *list.Element) {
	c.ll.Remove(e)
	ent := e.Value.(*entry)
	delete(c.cache, ent.key)
}

func (c *LRUCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		if now.After(e.Value.(*entry).expiration) {
			c.removeElement(e)
		}
		e = prev
	}
}
