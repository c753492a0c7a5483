package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "github.com/MinThiha23/exco-budget-management-system-sub000/internal/adapter/http"
	mw "github.com/MinThiha23/exco-budget-management-system-sub000/internal/adapter/middleware"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/adapter/repository/mysql"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/config"
	deductionDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/deduction"
	documentDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/document"
	identityDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/identity"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/notification"
	programDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/program"
	queryDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/query"
	remarkDomain "github.com/MinThiha23/exco-budget-management-system-sub000/internal/domain/remark"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/infrastructure/cache"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/infrastructure/db"
	identityStore "github.com/MinThiha23/exco-budget-management-system-sub000/internal/infrastructure/identity"
	"github.com/MinThiha23/exco-budget-management-system-sub000/internal/infrastructure/notify"
	approvaluc "github.com/MinThiha23/exco-budget-management-system-sub000/internal/usecase/approval"
	deductionuc "github.com/MinThiha23/exco-budget-management-system-sub000/internal/usecase/deduction"
	documentuc "github.com/MinThiha23/exco-budget-management-system-sub000/internal/usecase/document"
	programuc "github.com/MinThiha23/exco-budget-management-system-sub000/internal/usecase/program"
	queryuc "github.com/MinThiha23/exco-budget-management-system-sub000/internal/usecase/query"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(
		&programDomain.Program{},
		&queryDomain.Query{},
		&remarkDomain.Remark{},
		&documentDomain.Version{},
		&deductionDomain.Deduction{},
		&deductionDomain.TrackingEntry{},
		&notify.Row{},
	); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	programs := mysql.NewProgramRepository(gdb)
	documents := mysql.NewDocumentRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	ids := identityStore.NewStore(gdb)
	policy := identityDomain.NewPolicy()
	notifier := notification.NewNotifier(notify.NewStore(gdb))

	programUC := programuc.NewUsecase(programs, guow, ids, policy, notifier)
	queryUC := queryuc.NewUsecase(guow, ids, policy, notifier)
	approvalUC := approvaluc.NewUsecase(guow, ids, policy, notifier)
	deductionUC := deductionuc.NewUsecase(guow, ids, policy, notifier)
	documentUC := documentuc.NewUsecase(documents, guow, ids, notifier)

	h := httpadp.NewHandler()
	ph := httpadp.NewProgramHandler(programUC)
	qh := httpadp.NewQueryHandler(queryUC)
	ah := httpadp.NewApprovalHandler(approvalUC)
	dh := httpadp.NewDeductionHandler(deductionUC)
	doch := httpadp.NewDocumentHandler(documentUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())
	e.Use(mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/health", h.Health)

	e.POST("/programs", ph.CreateProgram)
	e.GET("/programs", ph.ListPrograms)
	e.GET("/programs/reviewable", ph.ListReviewable)
	e.GET("/programs/owner/:user_id", ph.ListByOwner)
	e.GET("/programs/:program_id", ph.GetProgram)
	e.PATCH("/programs/:program_id", ph.UpdateProgram)
	e.PUT("/programs/:program_id/status", ph.UpdateStatus)
	e.DELETE("/programs/:program_id", ph.DeleteProgram)
	e.POST("/programs/:program_id/submit", ph.SubmitProgram)
	e.POST("/programs/:program_id/remarks", ph.AddRemark)

	e.POST("/programs/:program_id/queries", qh.RaiseQuery)
	e.POST("/queries/:query_id/answer", qh.AnswerQuery)

	e.POST("/programs/:program_id/approve", ah.ApproveProgram)
	e.POST("/programs/:program_id/reject", ah.RejectProgram)
	e.POST("/programs/:program_id/accept", ah.AcceptDocument)

	e.POST("/programs/:program_id/deductions", dh.DeductBudget)

	e.POST("/programs/:program_id/documents", doch.RecordDocuments)
	e.GET("/programs/:program_id/documents/history", doch.DocumentHistory)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
