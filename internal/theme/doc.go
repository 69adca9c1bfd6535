// Package theme turns the stored theme preference into the theme applied to
// the window.
//
// The preference is light, dark or auto. Auto is resolved with a HintProvider;
// NewSystemProvider asks the operating system (the AppleInterfaceStyle default
// on macOS, gsettings and GTK_THEME on Linux, the AppsUseLightTheme registry
// value on Windows). Whenever the answer is missing the result is Fallback, so
// startup always picks the same theme on the same machine.
package theme
