package model

import (
	"encoding/gob"
	"io"
	"os"
	"reflect"

	"github.com/YuminosukeSato/mdlp/pkg/errors"
)

// SaveModel はモデルを gob 形式でファイルに保存する
//
// 使用例:
//
//	d := preprocessing.NewMDLPDiscretizer()
//	// ... 学習 ...
//	err := model.SaveModel(d, "mdlp.gob")
func SaveModel(model interface{}, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to create file %s", filename)
	}
	defer file.Close()

	if err := SaveModelToWriter(model, file); err != nil {
		return err
	}
	return errors.Wrap(file.Sync(), "failed to sync model file")
}

// LoadModel はファイルからモデルを読み込む
// model には読み込み先のポインタを渡す
func LoadModel(model interface{}, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to open file %s", filename)
	}
	defer file.Close()

	return LoadModelFromReader(model, file)
}

// SaveModelToWriter はモデルをio.Writerに保存する
func SaveModelToWriter(model interface{}, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(model); err != nil {
		return errors.Wrap(err, "failed to encode model")
	}
	return nil
}

// LoadModelFromReader はio.Readerからモデルを読み込む
// model の既存の内容は読み込んだ値で丸ごと置き換えられる
// gob はゼロ値のフィールドを送らずマップには追記するため、新しい値にデコードしてから代入する
// 失敗した場合 model は変更されない
func LoadModelFromReader(model interface{}, r io.Reader) error {
	v := reflect.ValueOf(model)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return errors.Newf("model must be a non-nil pointer, got %T", model)
	}
	fresh := reflect.New(v.Elem().Type())
	if err := gob.NewDecoder(r).Decode(fresh.Interface()); err != nil {
		return errors.Wrap(err, "failed to decode model")
	}
	v.Elem().Set(fresh.Elem())
	return nil
}
