package main

import (
	"database/sql"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/outlet-analytics-api/infrastructure/datasource"
	"github.com/vfg2006/outlet-analytics-api/internal/config"
	"github.com/vfg2006/outlet-analytics-api/internal/domain"
	"github.com/vfg2006/outlet-analytics-api/pkg/utils"
)

// Tabelas lidas por repository.DatasetRepository
var schema = []string{
	`CREATE TABLE IF NOT EXISTS sales (
		id VARCHAR(16) PRIMARY KEY,
		outlet_name TEXT NOT NULL,
		sale_date DATE NOT NULL,
		bill_amount NUMERIC(18, 2) NOT NULL DEFAULT 0,
		bill_count INTEGER NOT NULL DEFAULT 0,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		day INTEGER NOT NULL,
		visitors INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS daily_targets (
		id VARCHAR(16) PRIMARY KEY,
		outlet_name TEXT NOT NULL,
		target_date DATE NOT NULL,
		target NUMERIC(18, 2) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS monthly_targets (
		id VARCHAR(16) PRIMARY KEY,
		outlet_name TEXT NOT NULL,
		target_date DATE,
		target_amount NUMERIC(18, 2) NOT NULL DEFAULT 0,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS yearly_targets (
		id VARCHAR(16) PRIMARY KEY,
		outlet_name TEXT NOT NULL,
		target_amount NUMERIC(18, 2) NOT NULL DEFAULT 0,
		year INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS areas (
		id VARCHAR(16) PRIMARY KEY,
		outlet_name TEXT NOT NULL,
		area_manager TEXT NOT NULL,
		type TEXT,
		active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE INDEX IF NOT EXISTS sales_outlet_date_idx ON sales (outlet_name, sale_date)`,
}

func generateID() string {
	id, err := utils.GenerateID()
	if err != nil {
		logrus.Fatalf("ERRO ao gerar id: %v", err)
	}
	return id
}

func createTables(db *sql.DB) {
	logrus.Println("Criando tabelas do dataset...")

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			logrus.Fatalf("ERRO ao criar tabela: %v", err)
		}
	}

	logrus.Println("Tabelas criadas com sucesso")
}

// insertRows insere os registros com um statement preparado. Registros com
// erro são contados e ignorados.
func insertRows[T any](tx *sql.Tx, table, query string, rows []T, args func(T) ([]any, error)) {
	logrus.Printf("Iniciando inserção de %d registros em %s...", len(rows), table)
	startTime := time.Now()

	stmt, err := tx.Prepare(query)
	if err != nil {
		logrus.Fatalf("ERRO ao preparar statement para %s: %v", table, err)
	}
	defer stmt.Close()

	successCount := 0
	errorCount := 0

	for i, row := range rows {
		values, err := args(row)
		if err == nil {
			_, err = stmt.Exec(append([]any{generateID()}, values...)...)
		}
		if err != nil {
			logrus.Printf("ERRO ao inserir %s [%d/%d]: %v", table, i+1, len(rows), err)
			errorCount++
			continue
		}

		successCount++
		if i > 0 && i%500 == 0 {
			logrus.Printf("Progresso: %d/%d registros de %s", i+1, len(rows), table)
		}
	}

	logrus.Printf("Inserção em %s concluída em %v. Sucesso: %d, Erros: %d",
		table, time.Since(startTime), successCount, errorCount)
}

func seed(tx *sql.Tx, ds *domain.Dataset) {
	insertRows(tx, "sales",
		`INSERT INTO sales (id, outlet_name, sale_date, bill_amount, bill_count, year, month, day, visitors)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		ds.Sales, func(s domain.Sale) ([]any, error) {
			date, err := domain.ParseDate(s.Date)
			if err != nil {
				return nil, err
			}
			year, month, day := s.Year, s.Month, s.Day
			if year == 0 {
				year, month, day = date.Year(), int(date.Month()), date.Day()
			}
			return []any{s.Outlet, date, s.BillAmount, s.BillCount, year, month, day, s.Visitors}, nil
		})

	insertRows(tx, "daily_targets",
		`INSERT INTO daily_targets (id, outlet_name, target_date, target) VALUES ($1, $2, $3, $4)`,
		ds.DailyTargets, func(t domain.DailyTarget) ([]any, error) {
			date, err := domain.ParseDate(t.Date)
			if err != nil {
				return nil, err
			}
			return []any{t.Outlet, date, t.Target}, nil
		})

	insertRows(tx, "monthly_targets",
		`INSERT INTO monthly_targets (id, outlet_name, target_date, target_amount, year, month)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		ds.MonthlyTargets, func(t domain.MonthlyTarget) ([]any, error) {
			var date sql.NullTime
			if parsed, err := domain.ParseDate(t.Date); err == nil {
				date = sql.NullTime{Time: parsed, Valid: true}
			}
			return []any{t.Outlet, date, t.TargetAmount, t.Year, t.Month}, nil
		})

	insertRows(tx, "yearly_targets",
		`INSERT INTO yearly_targets (id, outlet_name, target_amount, year) VALUES ($1, $2, $3, $4)`,
		ds.YearlyTargets, func(t domain.YearlyTarget) ([]any, error) {
			year := sql.NullInt64{Int64: int64(t.Year), Valid: t.Year > 0}
			return []any{t.Outlet, t.TargetAmount, year}, nil
		})

	insertRows(tx, "areas",
		`INSERT INTO areas (id, outlet_name, area_manager, type) VALUES ($1, $2, $3, NULLIF($4, ''))`,
		ds.Areas, func(a domain.Area) ([]any, error) {
			return []any{a.Outlet, a.Manager, a.Type}, nil
		})
}

// Carrega um data.json (qualquer um dos dois formatos) nas tabelas do dataset.
// Uso: go run ./infrastructure/migration/script [arquivo]
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Println("Iniciando script de carga do dataset...")

	path := "data.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		logrus.Fatalf("ERRO ao ler %s: %v", path, err)
	}

	ds, err := datasource.Decode(raw)
	if err != nil {
		logrus.Fatalf("ERRO ao decodificar %s: %v", path, err)
	}
	logrus.Printf("Dataset lido: %d vendas, %d áreas, %d metas diárias", len(ds.Sales), len(ds.Areas), len(ds.DailyTargets))

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logrus.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	logrus.Println("Conexão com o banco de dados estabelecida com sucesso")

	createTables(db)

	startTime := time.Now()
	tx, err := db.Begin()
	if err != nil {
		logrus.Fatalf("ERRO ao iniciar transação: %v", err)
	}

	seed(tx, ds)

	if err := tx.Commit(); err != nil {
		logrus.Printf("ERRO ao confirmar transação: %v", err)
		if err := tx.Rollback(); err != nil {
			logrus.Fatalf("ERRO ao reverter transação: %v", err)
		}
		logrus.Println("Transação revertida")
		os.Exit(1)
	}

	logrus.Printf("Carga do dataset concluída em %v!", time.Since(startTime))
}
