package statistics

import (
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/featherpress/featherpress/app/models"
	"github.com/featherpress/featherpress/internal/pkg/cache"
	"github.com/featherpress/featherpress/internal/pkg/database"
)

const (
	CacheKeyBlogs     = "statistics:blogs:total"
	CacheKeyPublished = "statistics:articles:published"
	CacheKeyComments  = "statistics:comments:total"
	CacheExpiration   = 30 * time.Minute
)

// StatisticsData holds the platform counters shown on the reader home page
type StatisticsData struct {
	TotalBlogs        int
	PublishedArticles int
	TotalComments     int
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

func shouldUpdateCache() bool {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	return time.Since(lastCacheUpdate) > cacheUpdateInterval
}

// UpdateCacheIfNeeded refreshes the cached counters when they are stale
func UpdateCacheIfNeeded() {
	if shouldUpdateCache() {
		cacheUpdateMutex.Lock()
		defer cacheUpdateMutex.Unlock()

		if err := UpdateStatisticsCache(); err != nil {
			log.Printf("Error updating statistics cache: %v", err)
		} else {
			lastCacheUpdate = time.Now()
		}
	}
}

// ResetCacheUpdateTimer forces the next read to recompute the counters
func ResetCacheUpdateTimer() {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	lastCacheUpdate = time.Time{}
}

// UpdateStatisticsCache recounts all platform statistics and stores them in the cache
func UpdateStatisticsCache() error {
	db := database.GetDB()

	var totalBlogs int64
	if err := db.Model(&models.Blog{}).Count(&totalBlogs).Error; err != nil {
		log.Printf("Error counting blogs: %v", err)
		return err
	}

	var publishedArticles int64
	if err := db.Model(&models.Article{}).Where("category = ?", models.CategoryPublished).Count(&publishedArticles).Error; err != nil {
		log.Printf("Error counting published articles: %v", err)
		return err
	}

	var totalComments int64
	if err := db.Model(&models.Comment{}).Count(&totalComments).Error; err != nil {
		log.Printf("Error counting comments: %v", err)
		return err
	}

	if err := cache.Set(CacheKeyBlogs, strconv.FormatInt(totalBlogs, 10), CacheExpiration); err != nil {
		return err
	}
	if err := cache.Set(CacheKeyPublished, strconv.FormatInt(publishedArticles, 10), CacheExpiration); err != nil {
		return err
	}
	return cache.Set(CacheKeyComments, strconv.FormatInt(totalComments, 10), CacheExpiration)
}

// GetTotalBlogs returns the number of blogs from cache or database
func GetTotalBlogs() int {
	if val, err := cache.Get(CacheKeyBlogs); err == nil {
		if n, convErr := strconv.ParseInt(val, 10, 64); convErr == nil {
			return int(n)
		}
	}

	var count int64
	if err := database.GetDB().Model(&models.Blog{}).Count(&count).Error; err != nil {
		log.Printf("Error counting blogs: %v", err)
		return 0
	}
	if err := cache.Set(CacheKeyBlogs, strconv.FormatInt(count, 10), CacheExpiration); err != nil {
		log.Printf("Error caching blog count: %v", err)
	}
	return int(count)
}

// GetPublishedArticles returns the number of published articles from cache or database
func GetPublishedArticles() int {
	if val, err := cache.Get(CacheKeyPublished); err == nil {
		if n, convErr := strconv.ParseInt(val, 10, 64); convErr == nil {
			return int(n)
		}
	}

	var count int64
	if err := database.GetDB().Model(&models.Article{}).Where("category = ?", models.CategoryPublished).Count(&count).Error; err != nil {
		log.Printf("Error counting published articles: %v", err)
		return 0
	}
	if err := cache.Set(CacheKeyPublished, strconv.FormatInt(count, 10), CacheExpiration); err != nil {
		log.Printf("Error caching published article count: %v", err)
	}
	return int(count)
}

// GetTotalComments returns the number of comments from cache or database
func GetTotalComments() int {
	if val, err := cache.Get(CacheKeyComments); err == nil {
		if n, convErr := strconv.ParseInt(val, 10, 64); convErr == nil {
			return int(n)
		}
	}

	var count int64
	if err := database.GetDB().Model(&models.Comment{}).Count(&count).Error; err != nil {
		log.Printf("Error counting comments: %v", err)
		return 0
	}
	if err := cache.Set(CacheKeyComments, strconv.FormatInt(count, 10), CacheExpiration); err != nil {
		log.Printf("Error caching comment count: %v", err)
	}
	return int(count)
}

// GetStatisticsData returns all statistics for the reader home page
func GetStatisticsData() StatisticsData {
	UpdateCacheIfNeeded()

	return StatisticsData{
		TotalBlogs:        GetTotalBlogs(),
		PublishedArticles: GetPublishedArticles(),
		TotalComments:     GetTotalComments(),
	}
}
