// Package calendar builds wallpaper links and renders life, year and goal posters.
//
// Links are produced from raw form input and never fail: invalid input yields a
// localized placeholder instead of a URL. Posters are PNG grids of day or week
// dots coloured by whether the period has passed.
package calendar
