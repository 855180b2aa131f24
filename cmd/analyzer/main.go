package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/analysis"
	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/chart"
	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/config"
	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/domain"
	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/logger"
	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/session"
	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/xlsxreader"
	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "filter":
		runFilter(os.Args[2:])
	case "categories":
		runCategories(os.Args[2:])
	case "months":
		runMonths(os.Args[2:])
	case "recent":
		runRecent(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("엑셀 명세서 분석기 (excel statement analyzer)")
	fmt.Println("\nUsage:")
	fmt.Println("  analyzer <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  filter      Sum statement rows matching merchant keywords")
	fmt.Println("  categories  Summarize spending per category")
	fmt.Println("  months      Summarize spending per calendar month")
	fmt.Println("  recent      List recently analyzed statement files")
	fmt.Println("  help        Show this help message")
	fmt.Println("\nCommon options:")
	fmt.Println("  -file    statement .xlsx (defaults to the most recent one)")
	fmt.Println("  -config  path to analyzer.yaml")
	fmt.Println("\nRun 'analyzer <command> -h' for command options.")
}

// stringList collects a repeatable -keyword flag.
type stringList []string

func (s *stringList) String() string { return fmt.Sprint([]string(*s)) }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	file := fs.String("file", "", "statement .xlsx file")
	configPath := fs.String("config", "", "path to analyzer.yaml")
	doExport := fs.Bool("export", false, "export matched rows to CSV")
	all := fs.Bool("all", false, "select every row instead of filtering")
	var keywords stringList
	fs.Var(&keywords, "keyword", "merchant keyword (repeatable, OR-combined)")
	fs.Parse(args)

	s := newSession(*configPath)
	loadStatement(s, *file)

	var (
		res analysis.FilterResult
		err error
	)
	if *all {
		res, err = s.FilterAll()
	} else {
		res, err = s.Filter(keywords)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNoKeyword) && len(s.QuickKeywords()) > 0 {
			fmt.Printf("예시 키워드: %s\n", strings.Join(s.QuickKeywords(), ", "))
		}
		fail(err)
	}

	printer := message.NewPrinter(language.Korean)
	if res.EmptyMatch() {
		color.Yellow("키워드 %v 로 매칭된 내역이 없습니다.", res.Keywords)
	} else {
		printer.Printf("매칭 %d건\n", res.Count)
		color.New(color.Bold).Print("합산 결과: ")
		printer.Printf("%d 원\n", res.Total.Round(0).IntPart())
	}

	if *doExport {
		path, err := s.ExportFilter(res)
		if err != nil {
			fail(err)
		}
		if path != "" {
			fmt.Printf("내보내기 완료: %s\n", path)
		}
	}
}

func runCategories(args []string) {
	fs := flag.NewFlagSet("categories", flag.ExitOnError)
	file := fs.String("file", "", "statement .xlsx file")
	configPath := fs.String("config", "", "path to analyzer.yaml")
	doExport := fs.Bool("export", false, "export the summary to CSV")
	doChart := fs.Bool("chart", false, "draw a bar chart")
	fs.Parse(args)

	s := newSession(*configPath)
	loadStatement(s, *file)

	groups, err := s.CategorySummary()
	if err != nil {
		fail(err)
	}
	showGroups(s, "카테고리별 지출", groups, *doChart)

	if *doExport {
		path, err := s.ExportGroups("카테고리별", groups)
		if err != nil {
			fail(err)
		}
		fmt.Printf("내보내기 완료: %s\n", path)
	}
}

func runMonths(args []string) {
	fs := flag.NewFlagSet("months", flag.ExitOnError)
	file := fs.String("file", "", "statement .xlsx file")
	configPath := fs.String("config", "", "path to analyzer.yaml")
	doExport := fs.Bool("export", false, "export the summary to CSV")
	doChart := fs.Bool("chart", false, "draw a bar chart")
	fs.Parse(args)

	s := newSession(*configPath)
	loadStatement(s, *file)

	groups, err := s.MonthlySummary()
	if err != nil {
		fail(err)
	}
	showGroups(s, "월별 지출", groups, *doChart)

	if *doExport {
		path, err := s.ExportGroups("월별", groups)
		if err != nil {
			fail(err)
		}
		fmt.Printf("내보내기 완료: %s\n", path)
	}
}

func runRecent(args []string) {
	fs := flag.NewFlagSet("recent", flag.ExitOnError)
	configPath := fs.String("config", "", "path to analyzer.yaml")
	fs.Parse(args)

	s := newSession(*configPath)

	paths := s.RecentPaths()
	if len(paths) == 0 {
		fmt.Println("최근 분석한 파일이 없습니다.")
		return
	}
	for i, p := range paths {
		fmt.Printf("%2d. %s\n", i+1, p)
	}
}

func newSession(configPath string) *session.Session {
	cfg, err := config.Load(configPath)
	if err != nil {
		fail(err)
	}
	rules, err := config.LoadRules(cfg.RulesPath)
	if err != nil {
		fail(err)
	}
	log, err := logger.New(cfg.LogPath)
	if err != nil {
		fail(err)
	}
	return session.New(cfg, rules, log, xlsxreader.Read)
}

// loadStatement loads the requested file, falling back to the most recent
// usable statement when none was given.
func loadStatement(s *session.Session, file string) {
	if file == "" {
		recent := s.RecentPaths()
		if len(recent) == 0 {
			fail(errors.New("no -file given and no recent statement found"))
		}
		file = recent[0]
		fmt.Printf("최근 파일 사용: %s\n", file)
	}
	if err := s.Load(file); err != nil {
		fail(err)
	}
}

func showGroups(s *session.Session, title string, groups []analysis.Group, drawChart bool) {
	if len(groups) == 0 {
		fmt.Println("집계할 내역이 없습니다.")
		return
	}
	if drawChart {
		if err := s.RenderChart(chart.NewTermRenderer(os.Stdout), title, groups); err != nil {
			fail(err)
		}
		return
	}
	printer := message.NewPrinter(language.Korean)
	color.New(color.Bold).Println(title)
	for _, g := range groups {
		printer.Printf("%s: %d 원\n", g.Key, g.Total.Round(0).IntPart())
	}
}

// fail prints the short user-facing message and exits. Typed kinds get their
// own phrasing; everything else surfaces generically.
func fail(err error) {
	var missing *domain.MissingColumnError
	var loadErr *domain.LoadError
	var exportErr *domain.ExportError
	switch {
	case errors.Is(err, domain.ErrNoKeyword):
		color.Red("검색할 키워드를 입력하세요. (-keyword)")
	case errors.Is(err, domain.ErrNoStatement):
		color.Red("먼저 엑셀 파일을 불러오세요. (-file)")
	case errors.As(err, &missing):
		color.Red("엑셀에 %q 컬럼이 없습니다.", missing.Column)
	case errors.As(err, &loadErr):
		color.Red("엑셀 파일을 읽을 수 없습니다: %v", loadErr.Err)
	case errors.As(err, &exportErr):
		color.Red("내보내기에 실패했습니다: %v", exportErr.Err)
	default:
		color.Red("처리 중 오류 발생: %v", err)
	}
	os.Exit(1)
}
