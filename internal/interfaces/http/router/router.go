package router

import (
	"github.com/coop-erp/backend/internal/interfaces/http/handler"
	"github.com/coop-erp/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers bundles every handler the router wires up
type Handlers struct {
	System     *handler.SystemHandler
	Customer   *handler.CustomerHandler
	Supplier   *handler.SupplierHandler
	Member     *handler.MemberHandler
	Sales      *handler.SalesHandler
	Purchase   *handler.PurchaseHandler
	Project    *handler.ProjectHandler
	Asset      *handler.AssetHandler
	Payroll    *handler.PayrollHandler
	Accounting *handler.AccountingHandler
	Document   *handler.DocumentHandler
}

// New builds the gin engine with middleware and all API routes
func New(logger *zap.Logger, h Handlers) *gin.Engine {
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Recovery(logger))
	engine.Use(middleware.RequestLogger(logger))

	engine.GET("/health", h.System.Health)

	api := engine.Group("/api/v1")

	customers := api.Group("/customers")
	customers.POST("", h.Customer.Create)
	customers.GET("", h.Customer.List)
	customers.GET("/:id", h.Customer.Get)
	customers.PUT("/:id", h.Customer.Update)
	customers.DELETE("/:id", h.Customer.Delete)

	suppliers := api.Group("/suppliers")
	suppliers.POST("", h.Supplier.Create)
	suppliers.GET("", h.Supplier.List)
	suppliers.GET("/:id", h.Supplier.Get)
	suppliers.PUT("/:id", h.Supplier.Update)
	suppliers.DELETE("/:id", h.Supplier.Delete)

	members := api.Group("/members")
	members.POST("", h.Member.Create)
	members.GET("", h.Member.List)
	members.GET("/:id", h.Member.Get)
	members.PUT("/:id", h.Member.Update)
	members.DELETE("/:id", h.Member.Delete)
	members.POST("/:id/savings-transactions", h.Member.CreateSavingsTransaction)
	members.GET("/:id/savings-transactions", h.Member.ListSavingsTransactions)

	shu := api.Group("/shu-distributions")
	shu.POST("", h.Member.CreateSHUDistribution)
	shu.GET("", h.Member.ListSHUDistributions)
	shu.POST("/:id/complete", h.Member.CompleteSHUDistribution)

	salesOrders := api.Group("/sales-orders")
	salesOrders.POST("", h.Sales.CreateOrder)
	salesOrders.GET("", h.Sales.ListOrders)
	salesOrders.GET("/:id", h.Sales.GetOrder)
	salesOrders.PUT("/:id", h.Sales.UpdateOrder)
	salesOrders.DELETE("/:id", h.Sales.DeleteOrder)

	salesInvoices := api.Group("/sales-invoices")
	salesInvoices.POST("", h.Sales.CreateInvoice)
	salesInvoices.GET("", h.Sales.ListInvoices)
	salesInvoices.GET("/:id", h.Sales.GetInvoice)
	salesInvoices.PUT("/:id", h.Sales.UpdateInvoice)
	salesInvoices.DELETE("/:id", h.Sales.DeleteInvoice)
	salesInvoices.POST("/:id/payments", h.Sales.CreatePayment)
	salesInvoices.GET("/:id/payments", h.Sales.ListPayments)

	salesPayments := api.Group("/sales-payments")
	salesPayments.GET("/:id", h.Sales.GetPayment)
	salesPayments.PUT("/:id", h.Sales.UpdatePayment)
	salesPayments.DELETE("/:id", h.Sales.DeletePayment)

	purchaseOrders := api.Group("/purchase-orders")
	purchaseOrders.POST("", h.Purchase.CreateOrder)
	purchaseOrders.GET("", h.Purchase.ListOrders)
	purchaseOrders.GET("/:id", h.Purchase.GetOrder)
	purchaseOrders.PUT("/:id", h.Purchase.UpdateOrder)
	purchaseOrders.DELETE("/:id", h.Purchase.DeleteOrder)

	supplierInvoices := api.Group("/supplier-invoices")
	supplierInvoices.POST("", h.Purchase.CreateInvoice)
	supplierInvoices.GET("", h.Purchase.ListInvoices)
	supplierInvoices.GET("/:id", h.Purchase.GetInvoice)
	supplierInvoices.PUT("/:id", h.Purchase.UpdateInvoice)
	supplierInvoices.DELETE("/:id", h.Purchase.DeleteInvoice)
	supplierInvoices.POST("/:id/payments", h.Purchase.CreatePayment)
	supplierInvoices.GET("/:id/payments", h.Purchase.ListPayments)

	supplierPayments := api.Group("/supplier-payments")
	supplierPayments.GET("/:id", h.Purchase.GetPayment)
	supplierPayments.PUT("/:id", h.Purchase.UpdatePayment)
	supplierPayments.DELETE("/:id", h.Purchase.DeletePayment)

	projects := api.Group("/projects")
	projects.POST("", h.Project.Create)
	projects.GET("", h.Project.List)
	projects.GET("/:id", h.Project.Get)
	projects.PUT("/:id", h.Project.Update)
	projects.DELETE("/:id", h.Project.Delete)
	projects.POST("/:id/tasks", h.Project.CreateTask)
	projects.GET("/:id/tasks", h.Project.ListTasks)
	projects.POST("/:id/invoices", h.Project.CreateInvoice)
	projects.GET("/:id/invoices", h.Project.ListInvoices)

	tasks := api.Group("/tasks")
	tasks.GET("/:id", h.Project.GetTask)
	tasks.PUT("/:id", h.Project.UpdateTask)
	tasks.DELETE("/:id", h.Project.DeleteTask)
	tasks.POST("/:id/time-entries", h.Project.CreateTimeEntry)
	tasks.GET("/:id/time-entries", h.Project.ListTimeEntries)

	timeEntries := api.Group("/time-entries")
	timeEntries.PUT("/:id", h.Project.UpdateTimeEntry)
	timeEntries.DELETE("/:id", h.Project.DeleteTimeEntry)

	projectInvoices := api.Group("/project-invoices")
	projectInvoices.GET("/:id", h.Project.GetInvoice)
	projectInvoices.PUT("/:id", h.Project.UpdateInvoice)
	projectInvoices.DELETE("/:id", h.Project.DeleteInvoice)
	projectInvoices.POST("/:id/payments", h.Project.CreatePayment)
	projectInvoices.GET("/:id/payments", h.Project.ListPayments)

	projectPayments := api.Group("/project-payments")
	projectPayments.GET("/:id", h.Project.GetPayment)
	projectPayments.PUT("/:id", h.Project.UpdatePayment)
	projectPayments.DELETE("/:id", h.Project.DeletePayment)

	assets := api.Group("/assets")
	assets.POST("", h.Asset.Create)
	assets.GET("", h.Asset.List)
	assets.GET("/:id", h.Asset.Get)
	assets.PUT("/:id", h.Asset.Update)
	assets.DELETE("/:id", h.Asset.Delete)
	assets.POST("/:id/depreciations", h.Asset.CreateDepreciation)
	assets.GET("/:id/depreciations", h.Asset.ListDepreciations)
	assets.POST("/:id/maintenance", h.Asset.CreateMaintenance)
	assets.GET("/:id/maintenance", h.Asset.ListMaintenance)

	depreciations := api.Group("/depreciations")
	depreciations.GET("/:id", h.Asset.GetDepreciation)
	depreciations.PUT("/:id", h.Asset.UpdateDepreciation)
	depreciations.DELETE("/:id", h.Asset.DeleteDepreciation)

	maintenance := api.Group("/maintenance")
	maintenance.GET("/:id", h.Asset.GetMaintenance)
	maintenance.PUT("/:id", h.Asset.UpdateMaintenance)
	maintenance.DELETE("/:id", h.Asset.DeleteMaintenance)

	employees := api.Group("/employees")
	employees.POST("", h.Payroll.CreateEmployee)
	employees.GET("", h.Payroll.ListEmployees)
	employees.GET("/:id", h.Payroll.GetEmployee)
	employees.PUT("/:id", h.Payroll.UpdateEmployee)
	employees.DELETE("/:id", h.Payroll.DeleteEmployee)

	payrolls := api.Group("/payrolls")
	payrolls.POST("", h.Payroll.CreatePayroll)
	payrolls.GET("", h.Payroll.ListPayrolls)
	payrolls.GET("/:id", h.Payroll.GetPayroll)
	payrolls.PUT("/:id", h.Payroll.UpdatePayroll)
	payrolls.DELETE("/:id", h.Payroll.DeletePayroll)
	payrolls.POST("/:id/items", h.Payroll.CreatePayrollItem)
	payrolls.GET("/:id/items", h.Payroll.ListPayrollItems)

	payrollItems := api.Group("/payroll-items")
	payrollItems.PUT("/:id", h.Payroll.UpdatePayrollItem)
	payrollItems.DELETE("/:id", h.Payroll.DeletePayrollItem)

	accounts := api.Group("/accounts")
	accounts.POST("", h.Accounting.CreateAccount)
	accounts.GET("", h.Accounting.ListAccounts)
	accounts.GET("/:id", h.Accounting.GetAccount)
	accounts.PUT("/:id", h.Accounting.UpdateAccount)
	accounts.DELETE("/:id", h.Accounting.DeleteAccount)

	journalEntries := api.Group("/journal-entries")
	journalEntries.POST("", h.Accounting.CreateJournalEntry)
	journalEntries.GET("", h.Accounting.ListJournalEntries)
	journalEntries.GET("/:id", h.Accounting.GetJournalEntry)
	journalEntries.PUT("/:id", h.Accounting.UpdateJournalEntry)
	journalEntries.DELETE("/:id", h.Accounting.DeleteJournalEntry)
	journalEntries.POST("/:id/post", h.Accounting.PostJournalEntry)

	fiscalPeriods := api.Group("/fiscal-periods")
	fiscalPeriods.POST("", h.Accounting.CreateFiscalPeriod)
	fiscalPeriods.GET("", h.Accounting.ListFiscalPeriods)
	fiscalPeriods.GET("/:id", h.Accounting.GetFiscalPeriod)
	fiscalPeriods.POST("/:id/close", h.Accounting.CloseFiscalPeriod)
	fiscalPeriods.DELETE("/:id", h.Accounting.DeleteFiscalPeriod)

	documents := api.Group("/documents")
	documents.POST("", h.Document.Upload)
	documents.GET("", h.Document.List)
	documents.GET("/:id", h.Document.Get)
	documents.PUT("/:id", h.Document.Update)
	documents.DELETE("/:id", h.Document.Delete)
	documents.POST("/:id/versions", h.Document.UploadVersion)
	documents.GET("/:id/download", h.Document.Download)
	documents.POST("/:id/archive", h.Document.Archive)

	return engine
}
