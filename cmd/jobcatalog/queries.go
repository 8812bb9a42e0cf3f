package main

import (
	"context"
	"errors"
	"fmt"

	"jobcatalog/internal/catalog"
	"jobcatalog/internal/config"
	"jobcatalog/internal/domain"
	"jobcatalog/internal/pipeline"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCmdLocation(o *GlobalOptions) *cobra.Command {
	var state, city string
	cmd := queryCommand(o, &cobra.Command{
		Use:   "location",
		Short: "List jobs in a state and city.",
	}, func(_ context.Context, out *printer, _ *catalog.Catalog, q catalog.Queries, _ []string) error {
		if state == "" {
			state = o.cfg.Report.State
		}
		if city == "" {
			city = o.cfg.Report.City
		}
		out.jobs(pipeline.Collect(q.FilterByLocation(state, city)))
		return nil
	})
	cmd.Flags().StringVar(&state, "state", "", "Two-letter state (default report.state)")
	cmd.Flags().StringVar(&city, "city", "", "City (default report.city)")
	return cmd
}

func newCmdJunior(o *GlobalOptions) *cobra.Command {
	var limit int
	var state string
	cmd := queryCommand(o, &cobra.Command{
		Use:   "junior",
		Short: "List the first junior roles, or check the first job in a state.",
	}, func(_ context.Context, out *printer, _ *catalog.Catalog, q catalog.Queries, _ []string) error {
		if state != "" {
			job, junior, err := catalog.FirstJuniorInState(q, state)
			if errors.Is(err, catalog.ErrNoMatch) {
				out.line("no jobs in %s", state)
				return nil
			}
			if err != nil {
				return err
			}
			out.line("%s (junior: %t)", job.Caption, junior)
			return nil
		}

		if limit == 0 {
			limit = o.cfg.Report.JuniorLimit
		}
		out.jobs(q.FirstNMatching(catalog.IsJuniorRole, limit))
		return nil
	})
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "How many to list (default report.junior_limit)")
	cmd.Flags().StringVar(&state, "state", "", "Report whether the first job in this state is junior")
	return cmd
}

func newCmdCaptions(o *GlobalOptions) *cobra.Command {
	var limit int
	var term string
	cmd := queryCommand(o, &cobra.Command{
		Use:   "captions",
		Short: "Print captions of junior roles, or of titles containing a term.",
	}, func(_ context.Context, out *printer, _ *catalog.Catalog, q catalog.Queries, _ []string) error {
		if limit == 0 {
			limit = o.cfg.Report.JuniorLimit
		}
		p := catalog.IsJuniorRole
		if term != "" {
			p = catalog.TitleContains(term)
		}
		out.lines(q.CaptionsMatching(p, limit))
		return nil
	})
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "How many captions (default report.junior_limit)")
	cmd.Flags().StringVar(&term, "term", "", "Match titles containing this term instead of junior roles")
	return cmd
}

func newCmdWords(o *GlobalOptions) *cobra.Command {
	var top, shards int
	cmd := queryCommand(o, &cobra.Command{
		Use:   "words",
		Short: "Count words across job snippets.",
	}, func(_ context.Context, out *printer, c *catalog.Catalog, q catalog.Queries, _ []string) error {
		if shards == 0 {
			shards = o.cfg.Report.WordShards
		}
		var counts map[string]int64
		if shards > 1 && !o.loopStyle() {
			counts = c.WordFrequencyParallel(shards)
		} else {
			counts = q.WordFrequencyInSnippets()
		}
		for _, wc := range topWords(counts, top) {
			out.line("%s %d", wc.word, wc.count)
		}
		return nil
	})
	cmd.Flags().IntVar(&top, "top", 0, "Only print the most frequent words")
	cmd.Flags().IntVar(&shards, "shards", 0, "Count in parallel shards (default report.word_shards)")
	return cmd
}

func newCmdLongest(o *GlobalOptions) *cobra.Command {
	return queryCommand(o, &cobra.Command{
		Use:   "longest",
		Short: "Print the longest company name.",
	}, func(_ context.Context, out *printer, _ *catalog.Catalog, q catalog.Queries, _ []string) error {
		name, ok := q.CompanyNameWithMaxLength()
		if !ok {
			out.line("no companies")
			return nil
		}
		out.line("%s", name)
		return nil
	})
}

func newCmdSearch(o *GlobalOptions) *cobra.Command {
	return queryCommand(o, &cobra.Command{
		Use:   "search [TERM]",
		Short: "Find the first job whose title contains a term.",
		Args:  cobra.MaximumNArgs(1),
	}, func(_ context.Context, out *printer, _ *catalog.Catalog, q catalog.Queries, args []string) error {
		term := o.cfg.Report.SearchTerm
		if len(args) == 1 {
			term = args[0]
		}
		job, ok := q.FindFirstMatchingTitle(term)
		if !ok {
			out.line("no job title contains %q", term)
			return nil
		}
		out.line("%s", job.Caption)
		return nil
	})
}

func newCmdCompanies(o *GlobalOptions) *cobra.Command {
	return queryCommand(o, &cobra.Command{
		Use:   "companies",
		Short: "List distinct companies in order.",
	}, func(_ context.Context, out *printer, _ *catalog.Catalog, q catalog.Queries, _ []string) error {
		out.lines(q.DistinctCompaniesSorted())
		return nil
	})
}

func newCmdMenu(o *GlobalOptions) *cobra.Command {
	var size int
	cmd := queryCommand(o, &cobra.Command{
		Use:   "menu",
		Short: "Print a numbered menu of companies.",
	}, func(_ context.Context, out *printer, _ *catalog.Catalog, q catalog.Queries, _ []string) error {
		if size == 0 {
			size = o.cfg.Report.MenuSize
		}
		companies := q.DistinctCompaniesSorted()
		if o.loopStyle() {
			out.lines(catalog.Menu(companies, size))
		} else {
			out.lines(catalog.MenuRange(companies, size))
		}
		return nil
	})
	cmd.Flags().IntVarP(&size, "size", "n", 0, "Menu entries (default report.menu_size)")
	return cmd
}

func newCmdPage(o *GlobalOptions) *cobra.Command {
	var size, pages int
	cmd := queryCommand(o, &cobra.Command{
		Use:   "page",
		Short: "Print the first company of each page.",
	}, func(_ context.Context, out *printer, _ *catalog.Catalog, q catalog.Queries, _ []string) error {
		if size == 0 {
			size = o.cfg.Report.PageSize
		}
		companies := q.DistinctCompaniesSorted()
		if pages == 0 {
			pages = catalog.PageCount(len(companies), size)
		}
		out.line("%d companies, %d pages of %d", len(companies), pages, size)
		if o.loopStyle() {
			out.lines(catalog.PaginateLoop(companies, size, pages))
		} else {
			out.lines(catalog.Paginate(companies, size, pages))
		}
		return nil
	})
	cmd.Flags().IntVar(&size, "size", 0, "Page size (default report.page_size)")
	cmd.Flags().IntVar(&pages, "pages", 0, "Number of pages (default total/size)")
	return cmd
}

func newCmdPrefix(o *GlobalOptions) *cobra.Command {
	return queryCommand(o, &cobra.Command{
		Use:   "prefix [PREFIX]",
		Short: "List companies starting with a prefix.",
		Args:  cobra.MaximumNArgs(1),
	}, func(_ context.Context, out *printer, _ *catalog.Catalog, q catalog.Queries, args []string) error {
		prefix := o.cfg.Report.CompanyPrefix
		if len(args) == 1 {
			prefix = args[0]
		}
		log := o.log.Named("prefix")
		out.lines(q.CompaniesWithPrefix(prefix, func(company string) {
			log.Debug("considering", zap.String("company", company))
		}))
		return nil
	})
}

func newCmdNotify(o *GlobalOptions) *cobra.Command {
	var state string
	cmd := queryCommand(o, &cobra.Command{
		Use:   "notify",
		Short: "Print a notification for every job in a state.",
	}, func(_ context.Context, out *printer, c *catalog.Catalog, _ catalog.Queries, _ []string) error {
		if state == "" {
			state = o.cfg.Report.NotifyState
		}
		notified := 0
		for j := range c.All() {
			if catalog.NotifyIfMatches(j, catalog.InState(state), func(j domain.Job) {
				out.line("Notify: %s", j.Caption)
			}) {
				notified++
			}
		}
		o.log.Debug("notified", zap.String("state", state), zap.Int("jobs", notified))
		return nil
	})
	cmd.Flags().StringVar(&state, "state", "", "Two-letter state (default report.notify_state)")
	return cmd
}

func newCmdDates(o *GlobalOptions) *cobra.Command {
	var limit int
	var format string
	cmd := queryCommand(o, &cobra.Command{
		Use:   "dates",
		Short: "Reformat the posted dates of the first jobs.",
	}, func(_ context.Context, out *printer, _ *catalog.Catalog, q catalog.Queries, _ []string) error {
		if limit == 0 {
			limit = o.cfg.Report.DateLimit
		}
		if format == "" {
			format = o.cfg.Report.DateFormat
		}
		var conv catalog.DateConverter
		switch format {
		case config.DateFormatSite:
			conv = catalog.SiteDateConverter
		case config.DateFormatISO:
			conv = catalog.ISODateConverter
		default:
			return fmt.Errorf("unknown date format %q", format)
		}

		dates, err := q.ConvertPostedDates(conv, limit)
		if err != nil {
			return err
		}
		out.lines(dates)
		return nil
	})
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "How many dates (default report.date_limit)")
	cmd.Flags().StringVar(&format, "format", "", "site or iso (default report.date_format)")
	return cmd
}
