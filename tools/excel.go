package tools

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/xuri/excelize/v2"
)

const (
	ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportToExcel 将结构体切片写入 sheet，表头取 excel 标签，"-" 跳过该字段
func ExportToExcel(f *excelize.File, sheet string, data interface{}) error {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("data %T 不是切片", data)
	}

	elemType := v.Type().Elem()
	if elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		return fmt.Errorf("data %T 不是结构体切片", data)
	}

	if sheet == "" {
		sheet = "Sheet1"
	}
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}

	type fieldInfo struct {
		index  []int
		header string
	}
	var fields []fieldInfo
	for i := 0; i < elemType.NumField(); i++ {
		sf := elemType.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		tag := sf.Tag.Get("excel")
		if tag == "-" {
			continue
		}
		if tag == "" {
			tag = sf.Name
		}
		fields = append(fields, fieldInfo{index: sf.Index, header: tag})
	}

	// 表头即使没有数据行也写出
	for i, fi := range fields {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, fi.header); err != nil {
			return err
		}
	}

	for row := 0; row < v.Len(); row++ {
		elem := v.Index(row)
		if elem.Kind() == reflect.Ptr {
			if elem.IsNil() {
				continue
			}
			elem = elem.Elem()
		}
		for col, fi := range fields {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, elem.FieldByIndex(fi.index).Interface()); err != nil {
				return err
			}
		}
	}
	return nil
}

// Workbook 生成只含一个 sheet 的 xlsx 文件内容
func Workbook(sheet string, data interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := ExportToExcel(f, sheet, data); err != nil {
		return nil, err
	}
	if sheet != "" && sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, err
		}
		idx, err := f.GetSheetIndex(sheet)
		if err != nil {
			return nil, err
		}
		f.SetActiveSheet(idx)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
