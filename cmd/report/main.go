package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/alligatorO15/expense-analytics/internal/calendar"
	"github.com/alligatorO15/expense-analytics/internal/chart"
	"github.com/alligatorO15/expense-analytics/internal/config"
	"github.com/alligatorO15/expense-analytics/internal/database"
	"github.com/alligatorO15/expense-analytics/internal/export"
	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/alligatorO15/expense-analytics/internal/repository"
	"github.com/alligatorO15/expense-analytics/internal/service"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type Args struct {
	User       string   `arg:"-u,--user,required,env:REPORT_USER_ID" help:"id пользователя"`
	Period     string   `arg:"-p,--period" default:"month" help:"day, week, month, year или custom"`
	Anchor     string   `arg:"--anchor" help:"дата 2006-01-02, вокруг которой строится окно, по умолчанию сегодня"`
	From       string   `arg:"--from" help:"начало диапазона для custom, 2006-01-02"`
	To         string   `arg:"--to" help:"конец диапазона для custom, 2006-01-02"`
	Currency   string   `arg:"-c,--currency" help:"RUB, USD или EUR, по умолчанию из конфигурации"`
	Categories []string `arg:"--category,separate" help:"показывать только эти категории, можно повторять"`
	Ascending  bool     `arg:"--asc" help:"сортировать категории по возрастанию суммы"`
	Shift      int      `arg:"--shift" help:"сдвиг выбранной ячейки окна, отрицательный - в прошлое"`
	Chart      string   `arg:"--chart" help:"сохранить круговую диаграмму выбранной ячейки в png"`
	XLSX       string   `arg:"--xlsx" help:"сохранить окно в xlsx"`
}

func (Args) Description() string {
	return "Отчет по расходам пользователя за окно календарных периодов."
}

func main() {
	var args Args
	p, err := arg.NewParser(arg.Config{}, &args)
	if err != nil {
		log.Fatalf("Ошибка создания парсера аргументов: %v", err)
	}
	if err := p.Parse(os.Args[1:]); err != nil {
		if err == arg.ErrHelp {
			p.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		p.Fail(err.Error())
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используются переменные окружения")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	if err := run(context.Background(), cfg, args, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *config.Config, args Args, out io.Writer) error {
	userID, err := uuid.Parse(args.User)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}
	input, err := sessionInput(cfg, args)
	if err != nil {
		return err
	}

	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	repos := repository.NewRepositories(db)
	cal := calendar.New(cfg.Location)
	cal.FirstWeekday = cfg.FirstWeekday
	analytics := service.NewAnalyticsService(repos.Expense, service.AnalyticsOptions{
		Calendar:        cal,
		DefaultCurrency: models.Currency(cfg.DefaultCurrency),
		Logger:          log.Default(),
	})

	view, err := buildView(ctx, analytics, userID, cfg.Location, input, args)
	if err != nil {
		return err
	}

	printView(out, view)

	if args.Chart != "" {
		if err := writeChart(args.Chart, view); err != nil {
			return err
		}
	}
	if args.XLSX != "" {
		if err := writeFile(args.XLSX, func(w io.Writer) error { return export.WriteXLSX(w, view.Snapshot) }); err != nil {
			return err
		}
	}
	return nil
}

func sessionInput(cfg *config.Config, args Args) (*models.AnalyticsSessionCreate, error) {
	period, err := models.ParseTimePeriod(strings.ToLower(args.Period))
	if err != nil {
		return nil, err
	}
	input := &models.AnalyticsSessionCreate{Period: period}
	if period == models.TimePeriodCustom {
		// custom задается диапазоном, окно строится после создания сессии
		input.Period = ""
		if args.From == "" || args.To == "" {
			return nil, fmt.Errorf("--from and --to are required for custom period")
		}
	}

	if args.Currency != "" {
		currency, err := models.ParseCurrency(strings.ToUpper(args.Currency))
		if err != nil {
			return nil, err
		}
		input.Currency = currency
	}

	if args.Anchor != "" {
		anchor, err := time.ParseInLocation("2006-01-02", args.Anchor, cfg.Location)
		if err != nil {
			return nil, fmt.Errorf("invalid anchor: %w", err)
		}
		input.Today = &anchor
	}
	return input, nil
}

// buildView повторяет действия пользователя экрана аналитики: период, фильтр, сортировка, листание
func buildView(ctx context.Context, analytics service.AnalyticsService, userID uuid.UUID, loc *time.Location, input *models.AnalyticsSessionCreate, args Args) (*service.SessionView, error) {
	view, err := analytics.CreateSession(ctx, userID, input)
	if err != nil {
		return nil, err
	}
	sessionID := view.ID

	if args.From != "" && args.To != "" {
		interval, err := models.CustomRangeInput{Start: args.From, End: args.To}.Interval(loc)
		if err != nil {
			return nil, err
		}
		if view, err = analytics.ApplyCustomRange(ctx, userID, sessionID, interval); err != nil {
			return nil, err
		}
	}
	if len(args.Categories) > 0 {
		if view, err = analytics.UpdateCategories(ctx, userID, sessionID, args.Categories); err != nil {
			return nil, err
		}
	}
	if args.Ascending && view.SortOrder != models.SortAscending {
		if view, err = analytics.ToggleSortOrder(ctx, userID, sessionID); err != nil {
			return nil, err
		}
	}

	for step := args.Shift; step != 0; {
		next := view.SelectedIndex + 1
		if step < 0 {
			next = view.SelectedIndex - 1
		}
		if next < 0 || next >= len(view.Cells) {
			break
		}
		if view, err = analytics.UpdateSelectedIndex(ctx, userID, sessionID, next); err != nil {
			return nil, err
		}
		if step < 0 {
			step++
		} else {
			step--
		}
	}
	return view, nil
}

func printView(out io.Writer, view *service.SessionView) {
	for i, cell := range view.Cells {
		marker := " "
		if i == view.SelectedIndex {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-28s %s\n", marker, cell.Title, cell.Display.TotalAmount)
	}

	cell, ok := view.Selected()
	if !ok {
		fmt.Fprintln(out, "окно пустое")
		return
	}
	fmt.Fprintf(out, "\n%s, итого %s\n", cell.Title, cell.Display.TotalAmount)
	if len(cell.Rows) == 0 {
		fmt.Fprintln(out, "расходов нет")
		return
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "категория\tрасходов\tсумма\tдоля\t")
	for _, row := range cell.Rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t\n", row.Name, row.ExpenseCount, row.Amount, row.Percent)
	}
	_ = tw.Flush()
}

func writeChart(filename string, view *service.SessionView) error {
	cell, ok := view.Selected()
	if !ok {
		return fmt.Errorf("nothing to draw: window is empty")
	}
	return writeFile(filename, func(w io.Writer) error {
		return chart.RenderPie(w, cell.Report, chart.Options{Labels: true})
	})
}

func writeFile(filename string, write func(io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("Сохранено: %s", filename)
	return nil
}
