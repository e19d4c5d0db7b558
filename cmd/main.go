package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"
	"github.com/zooyer/golib/xos"
)

var (
	outFile string
	dialog  bool
	pause   bool
)

var rootCmd = &cobra.Command{
	Use:          "dimcalc [job.yaml]",
	Short:        "直径标注计算",
	Long:         `读取 YAML 标注任务，计算直径标注的测量值、参考点和偏移，并生成标注块，结果写入 CSV。`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&outFile, "out", "o", "", "CSV 输出文件，默认与任务文件同名")
	rootCmd.Flags().BoolVar(&dialog, "dialog", false, "使用对话框选择任务文件并提示错误")
	rootCmd.Flags().BoolVar(&pause, "pause", false, "结束前暂停等待按键")
}

func jobFile(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !dialog {
		return "", errors.New("请指定标注任务文件")
	}
	return zenity.SelectFile(zenity.Title("选择标注任务文件"))
}

func run(cmd *cobra.Command, args []string) error {
	filename, err := jobFile(args)
	if err != nil {
		return err
	}

	job, err := OpenJob(filename)
	if err != nil {
		return err
	}

	doc, dims, err := job.Run()
	if err != nil {
		return err
	}

	out := outFile
	if out == "" {
		out = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".csv"
	}
	if err = os.WriteFile(out, []byte(header), 0644); err != nil {
		return err
	}
	fmt.Println("写入文件:", out)

	for i, dim := range dims {
		fmt.Printf("[DIM.%02d] | %s | 直径 %.4f | 偏移 %.4f | 块 %s\n",
			i+1, dim.Handle, dim.Measurement(), dim.Offset(), dim.Block().Name,
		)
		if err = xos.AppendFile(out, []byte(Row(i, dim)), 0644); err != nil {
			return err
		}
	}

	ext := doc.Extents()
	fmt.Printf("共%d个标注, 范围 RECTANG %.2f,%.2f %.2f,%.2f\n", len(dims), ext.Min.X, ext.Min.Y, ext.Max.X, ext.Max.Y)
	return nil
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		if dialog {
			_ = zenity.Error(err.Error(), zenity.Title("dimcalc"), zenity.ErrorIcon)
		}
		fmt.Fprintln(os.Stderr, err)
	}

	if pause {
		xos.PauseExit()
	}
	if err != nil {
		os.Exit(1)
	}
}
