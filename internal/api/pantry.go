package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"pantry/internal/models"
	"pantry/internal/monitoring"
	"pantry/internal/pantry"

	"github.com/gin-gonic/gin"
)

// PantryAPI represents the HTTP surface of the pantry analyzer
type PantryAPI struct {
	Router    *gin.Engine
	Analyzer  *pantry.Analyzer
	Inventory *pantry.Inventory
	Monitor   *monitoring.Monitor
	Metrics   *monitoring.MetricsCollector
}

// Options configures a PantryAPI
type Options struct {
	// JWTSecret enables bearer-token checks on /api/v1 when non-empty
	JWTSecret      string
	AllowedOrigins []string
}

// NewPantryAPI creates a new pantry API instance
func NewPantryAPI(analyzer *pantry.Analyzer, inventory *pantry.Inventory, metrics *monitoring.MetricsCollector, opts Options) *PantryAPI {
	router := gin.Default()
	if len(opts.AllowedOrigins) > 0 {
		router.Use(CORSMiddleware(opts.AllowedOrigins))
	}

	if metrics == nil {
		metrics = monitoring.NewMetricsCollector()
	}

	api := &PantryAPI{
		Router:    router,
		Analyzer:  analyzer,
		Inventory: inventory,
		Monitor:   monitoring.NewMonitor(),
		Metrics:   metrics,
	}

	api.setupRoutes(opts)
	return api
}

// setupRoutes configures all API endpoints
func (p *PantryAPI) setupRoutes(opts Options) {
	p.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Pantry API is running"})
	})

	p.Router.POST("/api/suggestions", p.SmartSuggestions)
	p.Router.GET("/api/metrics", p.GetMetrics)
	p.Router.GET("/api/search", p.SearchProducts)

	v1 := p.Router.Group("/api/v1")
	if opts.JWTSecret != "" {
		v1.Use(AuthMiddleware(opts.JWTSecret))
	}
	{
		// Shopping history analysis
		v1.POST("/pantry/analyze", p.AnalyzePatterns)
		v1.POST("/pantry/missing", p.MissingEssentials)
		v1.POST("/pantry/suggestions", p.PantrySuggestions)
		v1.GET("/pantry/template", p.InventoryTemplate)
		v1.GET("/pantry/categorize", p.Categorize)
		v1.GET("/pantry/categories", p.ListCategories)

		// Inventory management
		v1.GET("/inventory", p.GetInventory)
		v1.GET("/inventory/items/:name", p.GetInventoryItem)
		v1.POST("/inventory/add", p.AddInventoryItem)
		v1.POST("/inventory/remove", p.RemoveInventoryItem)
		v1.POST("/inventory/expiry", p.SetInventoryExpiry)
		v1.GET("/inventory/low-stock", p.GetLowStock)
		v1.GET("/inventory/expired", p.GetExpired)
		v1.GET("/inventory/shopping-list", p.GetShoppingList)
	}
}

// HistoryRequest carries a shopping history; entries may be record objects
// or bare item names
type HistoryRequest struct {
	History []models.PurchaseRecordInput `json:"history" binding:"required"`
}

// SuggestionRequest carries the items currently on hand
type SuggestionRequest struct {
	CurrentItems []string            `json:"current_items" binding:"required"`
	Preferences  *pantry.Preferences `json:"preferences"`
}

// SmartSuggestionRequest is the body of the shopping-list suggestion endpoint
type SmartSuggestionRequest struct {
	History []string `json:"history"`
}

// Shopping history handlers

func (p *PantryAPI) SmartSuggestions(c *gin.Context) {
	var req SmartSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		p.fail(c, "smart_suggestions", http.StatusBadRequest, err)
		return
	}

	suggestions := pantry.SmartSuggestions(req.History)
	p.Metrics.RecordSuggestions("smart", len(suggestions))
	p.succeed("smart_suggestions", gin.H{"count": len(suggestions)})

	c.JSON(http.StatusOK, suggestions)
}

func (p *PantryAPI) AnalyzePatterns(c *gin.Context) {
	records, ok := p.bindHistory(c, "analyze")
	if !ok {
		return
	}

	analysis := p.Analyzer.AnalyzeShoppingPatterns(records)
	p.Metrics.RecordMissingEssentials(len(analysis.MissingEssentials))
	p.succeed("analyze", gin.H{
		"records":            len(records),
		"missing_essentials": len(analysis.MissingEssentials),
	})

	c.JSON(http.StatusOK, analysis)
}

func (p *PantryAPI) MissingEssentials(c *gin.Context) {
	records, ok := p.bindHistory(c, "missing")
	if !ok {
		return
	}

	missing := p.Analyzer.MissingEssentials(records)
	p.Metrics.RecordMissingEssentials(len(missing))
	p.succeed("missing", gin.H{"missing_essentials": len(missing)})

	c.JSON(http.StatusOK, gin.H{"missing_essentials": missing})
}

func (p *PantryAPI) PantrySuggestions(c *gin.Context) {
	var req SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		p.fail(c, "suggest", http.StatusBadRequest, err)
		return
	}

	suggestions := p.Analyzer.PantrySuggestions(req.CurrentItems, req.Preferences)
	p.Metrics.RecordSuggestions("pantry", len(suggestions))
	p.succeed("suggest", gin.H{"count": len(suggestions)})

	c.JSON(http.StatusOK, suggestions)
}

func (p *PantryAPI) InventoryTemplate(c *gin.Context) {
	template := p.Analyzer.InventoryTemplate()
	p.succeed("template", nil)

	c.JSON(http.StatusOK, template)
}

func (p *PantryAPI) Categorize(c *gin.Context) {
	item := c.Query("item")
	if item == "" {
		p.fail(c, "categorize", http.StatusBadRequest, errors.New("item query parameter is required"))
		return
	}

	token := pantry.Normalize(item)
	category, ok := p.Analyzer.Catalog().Categorize(token)
	p.succeed("categorize", nil)

	response := gin.H{
		"item":             item,
		"token":            token,
		"category":         nil,
		"grocery_category": pantry.GroceryCategory(item),
	}
	if ok {
		response["category"] = category
	}
	c.JSON(http.StatusOK, response)
}

func (p *PantryAPI) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": p.Analyzer.Catalog().CategoryNames()})
}

func (p *PantryAPI) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	results := pantry.Search(query)
	p.succeed("search", gin.H{"results": len(results)})

	c.JSON(http.StatusOK, gin.H{"query": pantry.ParseQuery(query), "results": results})
}

// Inventory management handlers

func (p *PantryAPI) GetInventory(c *gin.Context) {
	c.JSON(http.StatusOK, p.Inventory.ByCategory())
}

func (p *PantryAPI) GetInventoryItem(c *gin.Context) {
	name := c.Param("name")
	item, ok := p.Inventory.Get(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("item %q is not tracked", name)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item, "status": p.Inventory.StatusOf(item)})
}

func (p *PantryAPI) AddInventoryItem(c *gin.Context) {
	var req struct {
		Name     string          `json:"name"`
		Command  string          `json:"command"`
		Category models.Category `json:"category"`
		Quantity int             `json:"quantity"`
		Unit     string          `json:"unit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		p.fail(c, "inventory_add", http.StatusBadRequest, err)
		return
	}
	// "two cartons of milk" style commands fill in name and quantity
	if req.Name == "" && req.Command != "" {
		req.Quantity, req.Name = pantry.ParseItemCommand(req.Command)
	}

	item, err := p.Inventory.AddItem(req.Name, req.Category, req.Quantity, req.Unit)
	if err != nil {
		p.fail(c, "inventory_add", http.StatusBadRequest, err)
		return
	}
	p.recordInventory()
	p.succeed("inventory_add", nil)

	c.JSON(http.StatusOK, item)
}

func (p *PantryAPI) RemoveInventoryItem(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		p.fail(c, "inventory_remove", http.StatusBadRequest, err)
		return
	}

	item, err := p.Inventory.RemoveItem(req.Name, req.Quantity)
	if err != nil {
		p.fail(c, "inventory_remove", inventoryErrorStatus(err), err)
		return
	}
	p.recordInventory()
	p.succeed("inventory_remove", nil)

	c.JSON(http.StatusOK, item)
}

func (p *PantryAPI) SetInventoryExpiry(c *gin.Context) {
	var req struct {
		Name       string `json:"name" binding:"required"`
		ExpiryDate string `json:"expiry_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		p.fail(c, "inventory_expiry", http.StatusBadRequest, err)
		return
	}

	expiry, err := time.Parse(time.DateOnly, req.ExpiryDate)
	if err != nil {
		p.fail(c, "inventory_expiry", http.StatusBadRequest, err)
		return
	}

	item, err := p.Inventory.SetExpiry(req.Name, expiry)
	if err != nil {
		p.fail(c, "inventory_expiry", inventoryErrorStatus(err), err)
		return
	}
	p.recordInventory()
	p.succeed("inventory_expiry", nil)

	c.JSON(http.StatusOK, item)
}

func (p *PantryAPI) GetLowStock(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"low_stock": p.Inventory.LowStock()})
}

func (p *PantryAPI) GetExpired(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"expired": p.Inventory.Expired()})
}

func (p *PantryAPI) GetShoppingList(c *gin.Context) {
	c.JSON(http.StatusOK, p.Inventory.ShoppingList())
}

// Monitoring handlers

func (p *PantryAPI) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, p.Monitor.GetMetrics())
}

// Private helper methods

func (p *PantryAPI) bindHistory(c *gin.Context, operation string) ([]models.PurchaseRecord, bool) {
	var req HistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		p.fail(c, operation, http.StatusBadRequest, err)
		return nil, false
	}

	records, err := models.RecordsFromInputs(req.History)
	if err != nil {
		p.fail(c, operation, http.StatusBadRequest, err)
		return nil, false
	}
	return records, true
}

func (p *PantryAPI) succeed(operation string, fields gin.H) {
	p.Metrics.RecordRequest(operation, "ok")
	p.Monitor.RecordOperation(operation, fields)
}

func (p *PantryAPI) fail(c *gin.Context, operation string, status int, err error) {
	p.Metrics.RecordRequest(operation, "error")
	p.Monitor.RecordOperation(operation, gin.H{"last_error": err.Error()})
	c.JSON(status, gin.H{"error": err.Error()})
}

func (p *PantryAPI) recordInventory() {
	counts := p.Inventory.StatusCounts()
	byStatus := make(map[string]int, len(counts))
	total := 0
	for status, n := range counts {
		byStatus[string(status)] = n
		total += n
	}
	p.Metrics.RecordInventory(byStatus)
	p.Monitor.RecordMetric("inventory_items", total)
}

func inventoryErrorStatus(err error) int {
	if errors.Is(err, pantry.ErrItemNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
