package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/reliefweb-go/reliefweb/pkg/reliefweb"
)

// resourceSpec describes one resource command group: how to reach its
// endpoint and how to lay its items out in a table.
type resourceSpec[T any] struct {
	use      string
	aliases  []string
	short    string
	accessor func(reliefweb.Client) reliefweb.ResourceClient[T]
	headers  []string
	row      func(item reliefweb.Item[T]) []any
}

// listFlags holds the query-building flags shared by all list commands.
type listFlags struct {
	limit          int
	offset         int
	profile        string
	preset         string
	query          string
	queryFields    []string
	queryOperator  string
	filters        []string
	filterOperator string
	sorts          []string
	include        []string
	exclude        []string
}

// buildParams translates list flags into query parameters.
func (f *listFlags) buildParams(cmd *cobra.Command) (*reliefweb.QueryParams, error) {
	params := reliefweb.NewQueryParams()

	if cmd.Flags().Changed("limit") {
		params.WithLimit(f.limit)
	}

	if cmd.Flags().Changed("offset") {
		params.WithOffset(f.offset)
	}

	profile, err := parseProfile(f.profile)
	if err != nil {
		return nil, err
	}

	if profile != "" {
		params.WithProfile(profile)
	}

	preset, err := parsePreset(f.preset)
	if err != nil {
		return nil, err
	}

	if preset != "" {
		params.WithPreset(preset)
	}

	if f.query != "" {
		operator, err := parseOperator(f.queryOperator)
		if err != nil {
			return nil, err
		}

		params.WithQuery(reliefweb.SearchQuery{
			Value:    f.query,
			Fields:   f.queryFields,
			Operator: operator,
		})
	}

	filterOperator, err := parseOperator(f.filterOperator)
	if err != nil {
		return nil, err
	}

	for _, raw := range f.filters {
		filter, err := parseFilter(raw, filterOperator)
		if err != nil {
			return nil, err
		}

		params.WithFilter(filter)
	}

	for _, raw := range f.sorts {
		sort, err := parseSort(raw)
		if err != nil {
			return nil, err
		}

		params.WithSorts(sort)
	}

	params.WithInclude(f.include...)
	params.WithExclude(f.exclude...)

	return params, nil
}

// newResourceCommand builds the list/get command group for one resource.
func newResourceCommand[T any](spec resourceSpec[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:     spec.use,
		Aliases: spec.aliases,
		Short:   spec.short,
	}
	cmd.Run = func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	}

	cmd.AddCommand(newListCommand(spec))
	cmd.AddCommand(newGetCommand(spec))

	return cmd
}

func newListCommand[T any](spec resourceSpec[T]) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + spec.use,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params, err := flags.buildParams(cmd)
			if err != nil {
				return err
			}

			resp, err := spec.accessor(client).List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", spec.use, err)
			}

			return renderResponse(spec, resp, true)
		},
	}

	cmd.Flags().IntVar(&flags.limit, "limit", 0, "maximum number of results (0-1000)")
	cmd.Flags().IntVar(&flags.offset, "offset", 0, "number of results to skip")
	cmd.Flags().StringVar(&flags.profile, "profile", "", "field profile (minimal, full, list)")
	cmd.Flags().StringVar(&flags.preset, "preset", "", "use-case preset (minimal, latest, analysis)")
	cmd.Flags().StringVarP(&flags.query, "query", "q", "", "full-text search value")
	cmd.Flags().StringSliceVar(&flags.queryFields, "query-fields", nil, "fields to search in")
	cmd.Flags().StringVar(&flags.queryOperator, "query-operator", "", "how spaces combine in the query (AND, OR)")
	cmd.Flags().StringArrayVarP(&flags.filters, "filter", "f", nil, "filter condition field=value; prefix with ! to negate (repeatable)")
	cmd.Flags().StringVar(&flags.filterOperator, "filter-operator", "", "how filter conditions combine (AND, OR)")
	cmd.Flags().StringArrayVarP(&flags.sorts, "sort", "s", nil, "sort by field:asc or field:desc (repeatable, order is priority)")
	cmd.Flags().StringSliceVar(&flags.include, "include", nil, "field paths to include")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "field paths to exclude")

	return cmd
}

func newGetCommand[T any](spec resourceSpec[T]) *cobra.Command {
	var (
		profile string
		include []string
		exclude []string
	)

	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Get a single item by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			parsedProfile, err := parseProfile(profile)
			if err != nil {
				return err
			}

			opts := &reliefweb.GetOptions{
				Profile: parsedProfile,
				Include: include,
				Exclude: exclude,
			}

			resp, err := spec.accessor(client).Get(context.Background(), args[0], opts)
			if err != nil {
				return fmt.Errorf("failed to get %s %s: %w", spec.use, args[0], err)
			}

			return renderResponse(spec, resp, false)
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "field profile (minimal, full, list)")
	cmd.Flags().StringSliceVar(&include, "include", nil, "field paths to include")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "field paths to exclude")

	return cmd
}

// renderResponse prints an envelope in the configured output format.
func renderResponse[T any](spec resourceSpec[T], resp *reliefweb.APIResponse[T], summary bool) error {
	output := viper.GetString("output")
	switch output {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(resp.Data)
	case "yaml":
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(resp.Data)
	case "table":
		if len(resp.Data) == 0 {
			fmt.Printf("No %s found\n", spec.use)

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)

		headerCells := make([]any, len(spec.headers))
		for i, header := range spec.headers {
			headerCells[i] = header
		}

		table.Header(headerCells...)

		for _, item := range resp.Data {
			_ = table.Append(spec.row(item)...)
		}

		_ = table.Render()

		if summary {
			fmt.Printf("\nShowing %d of %s total\n", len(resp.Data), derefInt(resp.TotalCount))
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutputFmt, output)
	}
}

// NewReportsCommand creates the reports command group.
func NewReportsCommand() *cobra.Command {
	return newResourceCommand(resourceSpec[reliefweb.ReportFields]{
		use:      "reports",
		aliases:  []string{"report"},
		short:    "Browse situation reports and other documents",
		accessor: reliefweb.Client.Reports,
		headers:  []string{"ID", "Title", "Status", "Origin", "Created"},
		row: func(item reliefweb.Item[reliefweb.ReportFields]) []any {
			return []any{
				item.ID,
				deref(item.Fields.Title),
				deref(item.Fields.Status),
				deref(item.Fields.Origin),
				createdDate(item.Fields.Date),
			}
		},
	})
}

// NewDisastersCommand creates the disasters command group.
func NewDisastersCommand() *cobra.Command {
	return newResourceCommand(resourceSpec[reliefweb.DisasterFields]{
		use:      "disasters",
		aliases:  []string{"disaster"},
		short:    "Browse disaster events",
		accessor: reliefweb.Client.Disasters,
		headers:  []string{"ID", "Name", "Status", "GLIDE", "Created"},
		row: func(item reliefweb.Item[reliefweb.DisasterFields]) []any {
			return []any{
				item.ID,
				deref(item.Fields.Name),
				deref(item.Fields.Status),
				deref(item.Fields.Glide),
				createdDate(item.Fields.Date),
			}
		},
	})
}

// NewCountriesCommand creates the countries command group.
func NewCountriesCommand() *cobra.Command {
	return newResourceCommand(resourceSpec[reliefweb.CountryFields]{
		use:      "countries",
		aliases:  []string{"country"},
		short:    "Browse countries",
		accessor: reliefweb.Client.Countries,
		headers:  []string{"ID", "Name", "Shortname", "ISO3", "Status"},
		row: func(item reliefweb.Item[reliefweb.CountryFields]) []any {
			return []any{
				item.ID,
				deref(item.Fields.Name),
				deref(item.Fields.Shortname),
				deref(item.Fields.ISO3),
				deref(item.Fields.Status),
			}
		},
	})
}

// NewJobsCommand creates the jobs command group.
func NewJobsCommand() *cobra.Command {
	return newResourceCommand(resourceSpec[reliefweb.JobFields]{
		use:      "jobs",
		aliases:  []string{"job"},
		short:    "Browse humanitarian job postings",
		accessor: reliefweb.Client.Jobs,
		headers:  []string{"ID", "Title", "Status", "Closing"},
		row: func(item reliefweb.Item[reliefweb.JobFields]) []any {
			closing := ""
			if item.Fields.Date != nil {
				closing = deref(item.Fields.Date.Closing)
			}

			return []any{
				item.ID,
				deref(item.Fields.Title),
				deref(item.Fields.Status),
				closing,
			}
		},
	})
}

// NewTrainingCommand creates the training command group.
func NewTrainingCommand() *cobra.Command {
	return newResourceCommand(resourceSpec[reliefweb.TrainingFields]{
		use:      "training",
		aliases:  []string{"trainings"},
		short:    "Browse training opportunities",
		accessor: reliefweb.Client.Training,
		headers:  []string{"ID", "Title", "Status", "Cost"},
		row: func(item reliefweb.Item[reliefweb.TrainingFields]) []any {
			return []any{
				item.ID,
				deref(item.Fields.Title),
				deref(item.Fields.Status),
				deref(item.Fields.Cost),
			}
		},
	})
}

// NewSourcesCommand creates the sources command group.
func NewSourcesCommand() *cobra.Command {
	return newResourceCommand(resourceSpec[reliefweb.SourceFields]{
		use:      "sources",
		aliases:  []string{"source"},
		short:    "Browse content sources",
		accessor: reliefweb.Client.Sources,
		headers:  []string{"ID", "Name", "Shortname", "Status"},
		row: func(item reliefweb.Item[reliefweb.SourceFields]) []any {
			return []any{
				item.ID,
				deref(item.Fields.Name),
				deref(item.Fields.Shortname),
				deref(item.Fields.Status),
			}
		},
	})
}

// NewBlogCommand creates the blog command group.
func NewBlogCommand() *cobra.Command {
	return newResourceCommand(resourceSpec[reliefweb.BlogFields]{
		use:      "blog",
		aliases:  []string{"blogs"},
		short:    "Browse blog posts",
		accessor: reliefweb.Client.Blog,
		headers:  []string{"ID", "Title", "Author", "Status"},
		row: func(item reliefweb.Item[reliefweb.BlogFields]) []any {
			return []any{
				item.ID,
				deref(item.Fields.Title),
				deref(item.Fields.Author),
				deref(item.Fields.Status),
			}
		},
	})
}

// NewBookCommand creates the book command group.
func NewBookCommand() *cobra.Command {
	return newResourceCommand(resourceSpec[reliefweb.BookFields]{
		use:      "book",
		aliases:  []string{"books"},
		short:    "Browse books",
		accessor: reliefweb.Client.Book,
		headers:  []string{"ID", "Title", "Status"},
		row: func(item reliefweb.Item[reliefweb.BookFields]) []any {
			return []any{
				item.ID,
				deref(item.Fields.Title),
				deref(item.Fields.Status),
			}
		},
	})
}

// createdDate extracts the created date for table output.
func createdDate(dates *reliefweb.DocumentDates) string {
	if dates == nil {
		return ""
	}

	return deref(dates.Created)
}
