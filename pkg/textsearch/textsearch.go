// Package textsearch misafir isimlerinde aksan duyarsız arama üretir.
// İspanyolca isimlerdeki á/é/í/ó/ú/ñ varyantları arama teriminde normalize
// edilir; sütun tarafında yalnızca LOWER kullanılır ki sorgu her veritabanında
// çalışsın.
package textsearch

import "strings"

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u", "Ñ", "n",
)

// Normalize metni küçük harfe çevirir ve aksanları düşürür.
func Normalize(s string) string {
	return accentReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// SQLFilter verilen sütun için LIKE koşulu ve argümanlarını döndürür.
// Terim normalize edilir; "Muñoz" araması "munoz" kaydını bulur.
func SQLFilter(column, term string) (string, []interface{}) {
	fragment := "LOWER(" + column + ") LIKE ?"
	return fragment, []interface{}{"%" + Normalize(term) + "%"}
}
