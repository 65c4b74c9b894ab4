package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/chart"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/collab"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/collab/factory"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/config"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/importer"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/logger"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/style"
)

// newCollaborator 创建协作方，测试中替换
var newCollaborator = func(ctx context.Context, cfg *config.Config) (collab.Collaborator, error) {
	return factory.New(ctx, cfg, logger.Log)
}

type rootFlags struct {
	config string
	model  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:          "opal",
		Short:        "OPAL MedTech 法规文章分析工具",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&flags.config, "config", "c", "configs/config.yaml", "配置文件路径")
	root.PersistentFlags().StringVarP(&flags.model, "model", "m", string(collab.DefaultModel), "模型标识")

	root.AddCommand(newStylesCmd(), newAnalyzeCmd(flags), newToolCmd(flags))
	return root
}

func newStylesCmd() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "styles",
		Short: "列出全部画家风格",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if id != "" {
				st, ok := style.Lookup(id)
				if !ok {
					return fmt.Errorf("unknown style: %s", id)
				}
				return writeJSON(cmd, st)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPAINTER\tFONT\tDARK")
			for _, st := range style.Registry() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\n", st.ID, st.Name, st.Painter, st.Font, st.Dark)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "只输出指定风格的完整定义")
	return cmd
}

func newAnalyzeCmd(flags *rootFlags) *cobra.Command {
	var styleID string
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "分析文章并输出六组图表数据",
		Example: `opal analyze outlook.md
opal analyze outlook.md --style vangogh`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, c, m, err := prepare(cmd, flags, args[0])
			if err != nil {
				return err
			}
			ds, err := c.AnalyzeCharts(cmd.Context(), text, m)
			if err != nil {
				return err
			}
			if styleID == "" {
				return writeJSON(cmd, ds)
			}
			st, ok := style.Lookup(styleID)
			if !ok {
				return fmt.Errorf("unknown style: %s", styleID)
			}
			return writeJSON(cmd, chart.RenderAll(ds, st, style.HexResolver{}))
		},
	}
	cmd.Flags().StringVar(&styleID, "style", "", "按指定风格输出渲染后的图表结构")
	return cmd
}

func newToolCmd(flags *rootFlags) *cobra.Command {
	var level, length string
	cmd := &cobra.Command{
		Use:   "tool <name> <file>",
		Short: "对文章运行魔法工具",
		Long:  "可用工具: summarize, keywords, gap-analysis, citation, translate, trend-predict；其他名字按通用分析处理。",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, c, m, err := prepare(cmd, flags, args[1])
			if err != nil {
				return err
			}
			params := collab.ToolParams{}
			if level != "" {
				params["level"] = level
			}
			if length != "" {
				params["length"] = length
			}
			out, err := c.RunTool(cmd.Context(), collab.ParseTool(args[0]), text, m, params)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&level, "level", "", "summarize 的详细程度 (Executive/Technical)")
	cmd.Flags().StringVar(&length, "length", "", "summarize 的篇幅 (Paragraph/Bullets)")
	return cmd
}

// prepare 加载配置、初始化日志、读取文章并创建协作方
func prepare(cmd *cobra.Command, flags *rootFlags, path string) (string, collab.Collaborator, collab.Model, error) {
	cfg, err := config.LoadConfig(flags.config)
	if err != nil {
		return "", nil, "", fmt.Errorf("无法加载配置文件: %w", err)
	}

	name := flags.model
	if !cmd.Flags().Changed("model") && cfg.LLM.DefaultModel != "" {
		name = cfg.LLM.DefaultModel
	}
	m, ok := collab.ParseModel(name)
	if !ok {
		return "", nil, "", fmt.Errorf("unknown model: %s", name)
	}
	if err = cfg.Validate(); err != nil {
		return "", nil, "", fmt.Errorf("配置错误: %w", err)
	}
	if err = logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		return "", nil, "", fmt.Errorf("无法初始化日志: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", nil, "", err
	}
	defer f.Close()
	body, err := importer.ReadFile(path, f)
	if err != nil {
		return "", nil, "", err
	}

	c, err := newCollaborator(cmd.Context(), cfg)
	if err != nil {
		return "", nil, "", err
	}
	return string(body), c, m, nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
